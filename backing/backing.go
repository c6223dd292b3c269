package backing

// Backing is addressable read-only byte storage.
//
// Implementations must be safe for concurrent reads and must not allocate in Read.
type Backing interface {
	// Read returns a view of n bytes starting at off. The view aliases the backing
	// memory and must not be modified. Out-of-range requests fail with a
	// *cellerr.BoundsError.
	Read(off, n int) ([]byte, error)
	// Len returns the number of addressable bytes.
	Len() int
}

// Bytes returns a view of the whole region.
func Bytes(b Backing) []byte {
	v, err := b.Read(0, b.Len())
	if err != nil {
		// Read(0, Len()) is always in range for a conforming implementation.
		return nil
	}
	return v
}
