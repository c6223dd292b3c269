package comparator

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a comparator kind is not recognized.
var ErrUnknownKind = errors.New("comparator: unknown kind")

// Comparator compares a fixed pattern against the bytes of a cell field.
type Comparator interface {
	// Compare returns the pattern compared to field: negative, zero or positive.
	// field is a view into cell memory and is never retained or modified.
	Compare(field []byte) (int, error)
	// Kind returns the comparison mode.
	Kind() Kind
	// Pattern returns the pattern bytes. The slice must not be modified.
	Pattern() []byte
}

// Kind is the comparison mode of a Comparator.
type Kind uint8

const (
	// KindBinary is full lexicographic unsigned-byte order.
	KindBinary Kind = iota + 1
	// KindBinaryPrefix compares only the first len(pattern) bytes of the field.
	KindBinaryPrefix
	// KindLong compares 8-byte big endian signed integers.
	KindLong
	// KindSubstring is ASCII case-insensitive containment.
	KindSubstring
	// KindRegex is a regular expression match.
	KindRegex
	// KindNull matches empty fields.
	KindNull
	// KindBitAnd matches when pattern AND field has a set bit.
	KindBitAnd
	// KindBitOr matches when pattern OR field has a set bit.
	KindBitOr
	// KindBitXor matches when pattern XOR field has a set bit.
	KindBitXor
)

var kindNames = map[Kind]string{
	KindBinary:       "binary",
	KindBinaryPrefix: "binary_prefix",
	KindLong:         "long",
	KindSubstring:    "substring",
	KindRegex:        "regex",
	KindNull:         "null",
	KindBitAnd:       "bit_and",
	KindBitOr:        "bit_or",
	KindBitXor:       "bit_xor",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// TotalOrder reports whether comparators of this kind are antisymmetric and
// transitive over whole fields, i.e. usable for sorting.
func (k Kind) TotalOrder() bool { return k == KindBinary }

// Ordered reports whether the sign of the result is meaningful. Kinds that are not
// ordered only distinguish zero (match) from non-zero.
func (k Kind) Ordered() bool {
	switch k {
	case KindBinary, KindBinaryPrefix, KindLong:
		return true
	default:
		return false
	}
}

// New constructs a comparator of the given kind from its pattern bytes.
func New(kind Kind, pattern []byte) (Comparator, error) {
	switch kind {
	case KindBinary:
		return NewBinary(pattern), nil
	case KindBinaryPrefix:
		return NewBinaryPrefix(pattern), nil
	case KindLong:
		return NewLongFromBytes(pattern)
	case KindSubstring:
		return NewSubstring(string(pattern)), nil
	case KindRegex:
		return NewRegex(string(pattern))
	case KindNull:
		return NewNull(), nil
	case KindBitAnd:
		return NewBit(pattern, BitAnd), nil
	case KindBitOr:
		return NewBit(pattern, BitOr), nil
	case KindBitXor:
		return NewBit(pattern, BitXor), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind))
	}
}
