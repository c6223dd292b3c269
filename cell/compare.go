package cell

import (
	"bytes"
	"cmp"
)

// Compare orders cells the way they are stored: by row, family and qualifier
// ascending (unsigned bytes), then by timestamp descending so newer versions come
// first, then by type descending so delete markers precede puts.
func Compare(a, b *Cell) int {
	if c := bytes.Compare(a.Row(), b.Row()); c != 0 {
		return c
	}
	if c := bytes.Compare(a.Family(), b.Family()); c != 0 {
		return c
	}
	if c := bytes.Compare(a.Qualifier(), b.Qualifier()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Timestamp(), a.Timestamp()); c != 0 {
		return c
	}
	return cmp.Compare(b.Type(), a.Type())
}

// Equal reports whether a and b hold the same bytes, whatever their backing.
func Equal(a, b *Cell) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}
