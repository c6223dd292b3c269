package block

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/cellkit/backing"
	"github.com/hupe1980/cellkit/cell"
	"github.com/hupe1980/cellkit/internal/conv"
	"github.com/hupe1980/cellkit/internal/pool"
)

// Block is one decoded frame: a payload of length-prefixed cells.
//
// Every cell is validated once when the block is decoded. Cells returned by a Block
// are buffer-backed views of its payload owned by the block; they stay valid until
// Release is called (or, for blocks of a File, until the File is closed).
type Block struct {
	data     []byte
	bufs     []backing.Buffer
	cells    []cell.Cell
	pooled   bool
	released atomic.Bool
}

func newBlock(data []byte, pooled bool) (*Block, error) {
	type extent struct{ off, n int }
	var extents []extent
	for pos := 0; pos < len(data); {
		if len(data)-pos < cellLenSize {
			return nil, fmt.Errorf("%w: truncated cell length at %d", ErrCorrupt, pos)
		}
		n, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(data[pos:]))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		pos += cellLenSize
		if n > len(data)-pos {
			return nil, fmt.Errorf("%w: cell of %d bytes at %d overruns frame of %d", ErrCorrupt, n, pos, len(data))
		}
		extents = append(extents, extent{off: pos, n: n})
		pos += n
	}

	b := &Block{
		data:   data,
		bufs:   make([]backing.Buffer, len(extents)),
		cells:  make([]cell.Cell, len(extents)),
		pooled: pooled,
	}
	for i, e := range extents {
		if err := b.bufs[i].Reset(data, e.off, e.n); err != nil {
			return nil, fmt.Errorf("%w: cell %d: %w", ErrCorrupt, i, err)
		}
		if err := b.cells[i].Reset(&b.bufs[i]); err != nil {
			return nil, fmt.Errorf("%w: cell %d: %w", ErrCorrupt, i, err)
		}
	}
	return b, nil
}

// Len returns the number of cells in the block.
func (b *Block) Len() int { return len(b.cells) }

// Size returns the decoded payload size in bytes.
func (b *Block) Size() int { return len(b.data) }

// Cell returns the i-th cell as a buffer-backed view of the payload. The returned
// Cell is owned by the block and must not be modified.
func (b *Block) Cell(i int) (*cell.Cell, error) {
	if b.released.Load() {
		return nil, ErrReleased
	}
	if i < 0 || i >= len(b.cells) {
		return nil, fmt.Errorf("block: cell index %d out of range [0, %d)", i, len(b.cells))
	}
	return &b.cells[i], nil
}

// Each calls fn for every cell in order and stops at the first error. It does
// not allocate.
func (b *Block) Each(fn func(i int, c *cell.Cell) error) error {
	if b.released.Load() {
		return ErrReleased
	}
	for i := range b.cells {
		if err := fn(i, &b.cells[i]); err != nil {
			return err
		}
	}
	return nil
}

// Release returns a pooled payload to the pool. It is idempotent. No cell obtained
// from the block may be used afterwards.
func (b *Block) Release() {
	if b.released.Swap(true) {
		return
	}
	if b.pooled {
		pool.Default.Put(b.data)
	}
	b.data = nil
}

// Decode parses a block stream. Raw frames borrow data directly, so data must
// outlive the returned blocks; compressed frames decode into pooled buffers that
// are returned by Block.Release.
func Decode(data []byte) ([]*Block, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: stream of %d bytes has no header", ErrCorrupt, len(data))
	}
	if m := binary.LittleEndian.Uint32(data); m != Magic {
		return nil, fmt.Errorf("%w: bad magic %#x", ErrCorrupt, m)
	}
	if v := data[4]; v != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, v)
	}
	c := Compression(data[5])
	if !c.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}

	var blocks []*Block
	release := func() {
		for _, b := range blocks {
			b.Release()
		}
	}

	for pos := headerSize; pos < len(data); {
		b, next, err := decodeFrame(data, pos, c)
		if err != nil {
			release()
			return nil, err
		}
		blocks = append(blocks, b)
		pos = next
	}
	return blocks, nil
}

func decodeFrame(data []byte, pos int, c Compression) (*Block, int, error) {
	if len(data)-pos < frameHeaderSize {
		return nil, 0, fmt.Errorf("%w: truncated frame header at %d", ErrCorrupt, pos)
	}
	rawSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(data[pos:]))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	compSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(data[pos+4:]))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	pos += frameHeaderSize

	if compSize == 0 {
		if rawSize > maxFrameSize {
			return nil, 0, fmt.Errorf("%w: raw frame of %d bytes exceeds %d", ErrCorrupt, rawSize, maxFrameSize)
		}
		if rawSize > len(data)-pos {
			return nil, 0, fmt.Errorf("%w: raw frame of %d bytes overruns stream", ErrCorrupt, rawSize)
		}
		payload := data[pos : pos+rawSize : pos+rawSize]
		b, err := newBlock(payload, false)
		return b, pos + rawSize, err
	}

	if compSize > len(data)-pos {
		return nil, 0, fmt.Errorf("%w: compressed frame of %d bytes overruns stream", ErrCorrupt, compSize)
	}
	if err := checkRawSize(rawSize, compSize, c); err != nil {
		return nil, 0, fmt.Errorf("%w: frame at %d: %w", ErrCorrupt, pos, err)
	}
	buf := pool.Default.Get(rawSize)
	if err := decompressInto(buf, data[pos:pos+compSize], c); err != nil {
		pool.Default.Put(buf)
		return nil, 0, fmt.Errorf("%w: %s frame at %d: %w", ErrCorrupt, c, pos, err)
	}
	b, err := newBlock(buf, true)
	if err != nil {
		pool.Default.Put(buf)
		return nil, 0, err
	}
	return b, pos + compSize, nil
}
