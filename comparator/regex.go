package comparator

import "regexp"

// Regex matches when the regular expression matches the field. It returns 0 on a
// match and 1 otherwise.
type Regex struct {
	expr string
	re   *regexp.Regexp
}

// NewRegex compiles expr (RE2 syntax) into a Regex comparator.
func NewRegex(expr string) (*Regex, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &Regex{expr: expr, re: re}, nil
}

// Compare implements Comparator.
func (c *Regex) Compare(field []byte) (int, error) {
	if c.re.Match(field) {
		return 0, nil
	}
	return 1, nil
}

// Kind implements Comparator.
func (c *Regex) Kind() Kind { return KindRegex }

// Pattern implements Comparator.
func (c *Regex) Pattern() []byte { return []byte(c.expr) }
