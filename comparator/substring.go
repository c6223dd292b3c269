package comparator

// Substring matches when the pattern occurs anywhere in the field, ignoring ASCII
// case. It returns 0 on a match and 1 otherwise.
type Substring struct {
	pattern []byte // lower-cased
}

// NewSubstring returns a Substring comparator. The pattern is lower-cased once here
// so Compare can fold only the field side.
func NewSubstring(pattern string) *Substring {
	p := make([]byte, len(pattern))
	for i := 0; i < len(pattern); i++ {
		p[i] = lowerASCII(pattern[i])
	}
	return &Substring{pattern: p}
}

// Compare implements Comparator.
func (c *Substring) Compare(field []byte) (int, error) {
	if containsFold(field, c.pattern) {
		return 0, nil
	}
	return 1, nil
}

// Kind implements Comparator.
func (c *Substring) Kind() Kind { return KindSubstring }

// Pattern implements Comparator. The returned pattern is lower-cased.
func (c *Substring) Pattern() []byte { return c.pattern }

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// containsFold reports whether lower (already lower-case) occurs in s under ASCII
// case folding.
func containsFold(s, lower []byte) bool {
	n := len(lower)
	if n == 0 {
		return true
	}
	first := lower[0]
	for i := 0; i+n <= len(s); i++ {
		if lowerASCII(s[i]) != first {
			continue
		}
		j := 1
		for j < n && lowerASCII(s[i+j]) == lower[j] {
			j++
		}
		if j == n {
			return true
		}
	}
	return false
}
