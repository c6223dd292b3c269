package backing

import "github.com/hupe1980/cellkit/cellerr"

// Array is a Backing that owns its bytes.
type Array struct {
	data []byte
}

// NewArray returns an Array over data. The Array takes ownership: the caller must not
// modify data afterwards.
func NewArray(data []byte) *Array {
	return &Array{data: data}
}

// Read implements Backing.
func (a *Array) Read(off, n int) ([]byte, error) {
	if err := cellerr.CheckBounds(off, n, len(a.data)); err != nil {
		return nil, err
	}
	return a.data[off : off+n : off+n], nil
}

// Len implements Backing.
func (a *Array) Len() int { return len(a.data) }
