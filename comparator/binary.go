package comparator

import "bytes"

// Binary compares the whole field lexicographically as unsigned bytes. A field that
// is a strict prefix of the pattern sorts before it.
type Binary struct {
	pattern []byte
}

// NewBinary returns a Binary comparator. pattern is copied.
func NewBinary(pattern []byte) *Binary {
	return &Binary{pattern: bytes.Clone(pattern)}
}

// Compare implements Comparator.
func (c *Binary) Compare(field []byte) (int, error) {
	return bytes.Compare(c.pattern, field), nil
}

// Kind implements Comparator.
func (c *Binary) Kind() Kind { return KindBinary }

// Pattern implements Comparator.
func (c *Binary) Pattern() []byte { return c.pattern }

// BinaryPrefix compares the pattern against the leading bytes of the field only.
// Any field that starts with the pattern compares equal, whatever follows. A field
// shorter than the pattern is compared as is, so a truncated pattern never matches.
type BinaryPrefix struct {
	pattern []byte
}

// NewBinaryPrefix returns a BinaryPrefix comparator. pattern is copied.
func NewBinaryPrefix(pattern []byte) *BinaryPrefix {
	return &BinaryPrefix{pattern: bytes.Clone(pattern)}
}

// Compare implements Comparator.
func (c *BinaryPrefix) Compare(field []byte) (int, error) {
	n := min(len(field), len(c.pattern))
	return bytes.Compare(c.pattern, field[:n]), nil
}

// Kind implements Comparator.
func (c *BinaryPrefix) Kind() Kind { return KindBinaryPrefix }

// Pattern implements Comparator.
func (c *BinaryPrefix) Pattern() []byte { return c.pattern }
