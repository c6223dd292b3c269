package comparator

// Null matches empty fields: 0 for a zero-length field, 1 otherwise.
type Null struct{}

// NewNull returns a Null comparator.
func NewNull() *Null { return &Null{} }

// Compare implements Comparator.
func (*Null) Compare(field []byte) (int, error) {
	if len(field) == 0 {
		return 0, nil
	}
	return 1, nil
}

// Kind implements Comparator.
func (*Null) Kind() Kind { return KindNull }

// Pattern implements Comparator.
func (*Null) Pattern() []byte { return nil }
