// Package comparator provides the field-pattern comparators.
//
// A Comparator holds an immutable pattern and compares it against the raw bytes of one
// cell field:
//
//	c := comparator.NewBinary([]byte("row1"))
//	r, err := c.Compare(fieldBytes)
//
// The result is the pattern relative to the field: Binary("row1") against the field
// "row0" is positive, against "row2" negative.
//
// # Ordering vs predicates
//
// Only Binary forms a total order and may be used to sort. BinaryPrefix and Long carry
// a meaningful sign but are not orders over whole fields. Substring, Regex, Null and
// the Bit comparators are pure predicates: 0 means match, anything else means no
// match, and the sign carries no information. Kind.TotalOrder and Kind.Ordered expose
// this distinction so callers can reject misuse.
//
// Comparators never allocate in Compare and are safe for concurrent use.
package comparator
