package comparator

import "bytes"

// BitOp is the bitwise operator applied by a Bit comparator.
type BitOp uint8

const (
	// BitAnd applies pattern & field.
	BitAnd BitOp = iota
	// BitOr applies pattern | field.
	BitOr
	// BitXor applies pattern ^ field.
	BitXor
)

// Bit applies a bitwise operator byte by byte between pattern and field. It returns
// 0 when the result has at least one set bit and 1 otherwise. Fields whose length
// differs from the pattern never match.
type Bit struct {
	pattern []byte
	op      BitOp
}

// NewBit returns a Bit comparator. pattern is copied.
func NewBit(pattern []byte, op BitOp) *Bit {
	return &Bit{pattern: bytes.Clone(pattern), op: op}
}

// Compare implements Comparator.
func (c *Bit) Compare(field []byte) (int, error) {
	if len(field) != len(c.pattern) {
		return 1, nil
	}
	for i := len(field) - 1; i >= 0; i-- {
		var b byte
		switch c.op {
		case BitAnd:
			b = c.pattern[i] & field[i]
		case BitOr:
			b = c.pattern[i] | field[i]
		case BitXor:
			b = c.pattern[i] ^ field[i]
		}
		if b != 0 {
			return 0, nil
		}
	}
	return 1, nil
}

// Op returns the bitwise operator.
func (c *Bit) Op() BitOp { return c.op }

// Kind implements Comparator.
func (c *Bit) Kind() Kind {
	switch c.op {
	case BitOr:
		return KindBitOr
	case BitXor:
		return KindBitXor
	default:
		return KindBitAnd
	}
}

// Pattern implements Comparator.
func (c *Bit) Pattern() []byte { return c.pattern }
