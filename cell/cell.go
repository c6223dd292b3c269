package cell

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/hupe1980/cellkit/backing"
)

// Cell is an immutable, zero-copy view of one serialized cell.
//
// The layout is validated once in New; afterwards every accessor resolves its field
// from the cached spans and returns a view into the backing. A Cell is safe for
// concurrent use as long as its backing memory stays valid.
type Cell struct {
	b backing.Backing
	l layout
}

// New validates the cell stored in b and returns a Cell over it.
func New(b backing.Backing) (*Cell, error) {
	c := &Cell{}
	if err := c.Reset(b); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset validates the cell stored in b and points c at it, so one Cell value can
// be reused across many backings. On error c is left unchanged.
func (c *Cell) Reset(b backing.Backing) error {
	l, err := parseLayout(b)
	if err != nil {
		return err
	}
	c.b, c.l = b, l
	return nil
}

// NewArrayCell returns an array-backed Cell that takes ownership of data.
func NewArrayCell(data []byte) (*Cell, error) {
	return New(backing.NewArray(data))
}

// NewBufferCell returns a buffer-backed Cell over buf[base : base+length].
//
// buf is borrowed: it must outlive the Cell and every view obtained from it.
func NewBufferCell(buf []byte, base, length int) (*Cell, error) {
	b, err := backing.NewBuffer(buf, base, length)
	if err != nil {
		return nil, err
	}
	return New(b)
}

// Build encodes kv into a fresh array-backed Cell.
func Build(kv KeyValue) (*Cell, error) {
	data, err := Encode(make([]byte, 0, EncodedLen(kv)), kv)
	if err != nil {
		return nil, err
	}
	return NewArrayCell(data)
}

// Backing returns the storage the cell reads from.
func (c *Cell) Backing() backing.Backing { return c.b }

// Len returns the encoded size of the cell.
func (c *Cell) Len() int { return c.b.Len() }

// Bytes returns a view of the whole encoded cell.
func (c *Cell) Bytes() []byte { return backing.Bytes(c.b) }

// Locate returns the offset and length of f within the cell's backing.
func (c *Cell) Locate(f Field) (off, n int, err error) {
	s, err := c.l.span(f)
	if err != nil {
		return 0, 0, err
	}
	return s.off, s.n, nil
}

// Field returns a view of the bytes of f.
func (c *Cell) Field(f Field) ([]byte, error) {
	s, err := c.l.span(f)
	if err != nil {
		return nil, err
	}
	return c.b.Read(s.off, s.n)
}

func (c *Cell) view(s span) []byte {
	v, err := c.b.Read(s.off, s.n)
	if err != nil {
		// Spans were validated against this backing in New.
		panic(err)
	}
	return v
}

// Row returns a view of the row key.
func (c *Cell) Row() []byte { return c.view(c.l.row) }

// Family returns a view of the column family.
func (c *Cell) Family() []byte { return c.view(c.l.family) }

// Qualifier returns a view of the column qualifier.
func (c *Cell) Qualifier() []byte { return c.view(c.l.qualifier) }

// Value returns a view of the value.
func (c *Cell) Value() []byte { return c.view(c.l.value) }

// Timestamp returns the cell timestamp.
func (c *Cell) Timestamp() int64 {
	return int64(binary.BigEndian.Uint64(c.view(span{off: c.l.trailer, n: timestampSize}))) //nolint:gosec // two's complement round trip
}

// Type returns the cell type tag.
func (c *Cell) Type() Type {
	return Type(c.view(span{off: c.l.trailer + timestampSize, n: typeSize})[0])
}

// KeyValue returns a copy of the logical fields. It allocates and is meant for
// tests and debugging, not for scan paths.
func (c *Cell) KeyValue() KeyValue {
	return KeyValue{
		Row:       bytes.Clone(c.Row()),
		Family:    bytes.Clone(c.Family()),
		Qualifier: bytes.Clone(c.Qualifier()),
		Timestamp: c.Timestamp(),
		Type:      c.Type(),
		Value:     bytes.Clone(c.Value()),
	}
}

// String formats the cell key as row/family:qualifier/timestamp/type/vlen=n.
func (c *Cell) String() string {
	return fmt.Sprintf("%s/%s:%s/%s/%s/vlen=%d",
		strconv.Quote(string(c.Row())),
		strconv.Quote(string(c.Family())),
		strconv.Quote(string(c.Qualifier())),
		strconv.FormatInt(c.Timestamp(), 10),
		c.Type(),
		c.l.value.n,
	)
}
