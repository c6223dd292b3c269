package comparator

import (
	"cmp"
	"encoding/binary"

	"github.com/hupe1980/cellkit/cellerr"
)

// LongSize is the width of an encoded Long value.
const LongSize = 8

// Long interprets the field as an 8-byte big endian signed integer and compares it
// numerically with the pattern value.
type Long struct {
	value   int64
	pattern [LongSize]byte
}

// NewLong returns a Long comparator for v.
func NewLong(v int64) *Long {
	c := &Long{value: v}
	binary.BigEndian.PutUint64(c.pattern[:], uint64(v)) //nolint:gosec // two's complement round trip
	return c
}

// NewLongFromBytes returns a Long comparator for an 8-byte big endian pattern.
func NewLongFromBytes(pattern []byte) (*Long, error) {
	v, err := decodeLong(pattern)
	if err != nil {
		return nil, err
	}
	return NewLong(v), nil
}

func decodeLong(b []byte) (int64, error) {
	if len(b) != LongSize {
		return 0, cellerr.Malformed("", "long needs %d bytes, got %d", LongSize, len(b))
	}
	return int64(binary.BigEndian.Uint64(b)), nil //nolint:gosec // two's complement round trip
}

// Compare implements Comparator. It fails with a *cellerr.MalformedCellError when
// the field is not exactly 8 bytes.
func (c *Long) Compare(field []byte) (int, error) {
	v, err := decodeLong(field)
	if err != nil {
		return 0, err
	}
	return cmp.Compare(c.value, v), nil
}

// Value returns the pattern as an integer.
func (c *Long) Value() int64 { return c.value }

// Kind implements Comparator.
func (c *Long) Kind() Kind { return KindLong }

// Pattern implements Comparator.
func (c *Long) Pattern() []byte { return c.pattern[:] }
