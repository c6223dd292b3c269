package comparator

import (
	"errors"
	"fmt"
)

// Marshal encodes c as [kind u8][pattern...].
func Marshal(c Comparator) []byte {
	p := c.Pattern()
	out := make([]byte, 0, 1+len(p))
	out = append(out, byte(c.Kind()))
	return append(out, p...)
}

// Unmarshal decodes a comparator produced by Marshal.
func Unmarshal(data []byte) (Comparator, error) {
	if len(data) == 0 {
		return nil, errors.New("comparator: empty encoding")
	}
	c, err := New(Kind(data[0]), data[1:])
	if err != nil {
		return nil, fmt.Errorf("comparator: unmarshal: %w", err)
	}
	return c, nil
}
