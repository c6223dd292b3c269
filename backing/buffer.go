package backing

import "github.com/hupe1980/cellkit/cellerr"

// Buffer is a Backing over a window of memory it does not own.
type Buffer struct {
	buf    []byte
	base   int
	length int
}

// NewBuffer returns a Buffer over buf[base : base+length].
//
// buf is borrowed, not copied. It must stay valid (not unmapped, not returned to a
// pool, not overwritten) for as long as the Buffer or any view read from it is in use.
func NewBuffer(buf []byte, base, length int) (*Buffer, error) {
	b := &Buffer{}
	if err := b.Reset(buf, base, length); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset points b at buf[base : base+length]. On error b is left unchanged.
func (b *Buffer) Reset(buf []byte, base, length int) error {
	if err := cellerr.CheckBounds(base, length, len(buf)); err != nil {
		return err
	}
	*b = Buffer{buf: buf, base: base, length: length}
	return nil
}

// Read implements Backing. off is relative to the window base.
func (b *Buffer) Read(off, n int) ([]byte, error) {
	if err := cellerr.CheckBounds(off, n, b.length); err != nil {
		return nil, err
	}
	start := b.base + off
	return b.buf[start : start+n : start+n], nil
}

// Len implements Backing.
func (b *Buffer) Len() int { return b.length }

// Base returns the window offset inside the borrowed memory.
func (b *Buffer) Base() int { return b.base }
