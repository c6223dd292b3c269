package cellkit

import (
	"fmt"

	"github.com/hupe1980/cellkit/cell"
	"github.com/hupe1980/cellkit/comparator"
)

// CompareOp relates a cell field to a comparator pattern, read as "field OP pattern".
type CompareOp uint8

const (
	// Less matches fields sorting before the pattern.
	Less CompareOp = iota
	// LessOrEqual matches fields sorting before or equal to the pattern.
	LessOrEqual
	// Equal matches fields equal to the pattern (or matching a predicate comparator).
	Equal
	// NotEqual matches fields not equal to the pattern.
	NotEqual
	// GreaterOrEqual matches fields sorting after or equal to the pattern.
	GreaterOrEqual
	// Greater matches fields sorting after the pattern.
	Greater
	// NoOp matches nothing.
	NoOp
)

var compareOpNames = [...]string{
	Less:           "less",
	LessOrEqual:    "less_or_equal",
	Equal:          "equal",
	NotEqual:       "not_equal",
	GreaterOrEqual: "greater_or_equal",
	Greater:        "greater",
	NoOp:           "no_op",
}

func (op CompareOp) String() string {
	if int(op) < len(compareOpNames) {
		return compareOpNames[op]
	}
	return fmt.Sprintf("CompareOp(%d)", uint8(op))
}

// ParseCompareOp returns the CompareOp named s.
func ParseCompareOp(s string) (CompareOp, error) {
	for i, name := range compareOpNames {
		if name == s {
			return CompareOp(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown op %q", ErrInvalidCompareOp, s)
}

// Matches applies op to a comparator result. Comparators return the pattern
// relative to the field, so "field < pattern" is a positive result.
func (op CompareOp) Matches(result int) bool {
	switch op {
	case Less:
		return result > 0
	case LessOrEqual:
		return result >= 0
	case Equal:
		return result == 0
	case NotEqual:
		return result != 0
	case GreaterOrEqual:
		return result <= 0
	case Greater:
		return result < 0
	default:
		return false
	}
}

// Filter decides whether a cell is selected.
type Filter interface {
	Match(c *cell.Cell) (bool, error)
}

// FieldFilter selects cells whose field satisfies op against a comparator.
type FieldFilter struct {
	field cell.Field
	op    CompareOp
	cmp   comparator.Comparator
}

// NewFieldFilter returns a filter on field f. Comparators whose sign carries no
// meaning (substring, regex, null, bit) accept only Equal, NotEqual and NoOp.
func NewFieldFilter(f cell.Field, op CompareOp, cmp comparator.Comparator) (*FieldFilter, error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	if int(op) >= len(compareOpNames) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCompareOp, op)
	}
	if !cmp.Kind().Ordered() {
		switch op {
		case Equal, NotEqual, NoOp:
		default:
			return nil, fmt.Errorf("%w: %s with %s comparator", ErrInvalidCompareOp, op, cmp.Kind())
		}
	}
	return &FieldFilter{field: f, op: op, cmp: cmp}, nil
}

// NewRowFilter returns a filter on the row key.
func NewRowFilter(op CompareOp, cmp comparator.Comparator) (*FieldFilter, error) {
	return NewFieldFilter(cell.FieldRow, op, cmp)
}

// NewFamilyFilter returns a filter on the column family.
func NewFamilyFilter(op CompareOp, cmp comparator.Comparator) (*FieldFilter, error) {
	return NewFieldFilter(cell.FieldFamily, op, cmp)
}

// NewQualifierFilter returns a filter on the column qualifier.
func NewQualifierFilter(op CompareOp, cmp comparator.Comparator) (*FieldFilter, error) {
	return NewFieldFilter(cell.FieldQualifier, op, cmp)
}

// NewValueFilter returns a filter on the value.
func NewValueFilter(op CompareOp, cmp comparator.Comparator) (*FieldFilter, error) {
	return NewFieldFilter(cell.FieldValue, op, cmp)
}

// Match implements Filter.
func (f *FieldFilter) Match(c *cell.Cell) (bool, error) {
	if f.op == NoOp {
		return false, nil
	}
	r, err := CompareField(c, f.field, f.cmp)
	if err != nil {
		return false, fmt.Errorf("cellkit: %s filter: %w", f.field, err)
	}
	return f.op.Matches(r), nil
}

// Field returns the filtered field.
func (f *FieldFilter) Field() cell.Field { return f.field }

// Op returns the compare operator.
func (f *FieldFilter) Op() CompareOp { return f.op }

// Comparator returns the comparator.
func (f *FieldFilter) Comparator() comparator.Comparator { return f.cmp }

// ListOp combines the members of a FilterList.
type ListOp uint8

const (
	// MustPassAll selects a cell when every member selects it.
	MustPassAll ListOp = iota
	// MustPassOne selects a cell when at least one member selects it.
	MustPassOne
)

func (op ListOp) String() string {
	if op == MustPassOne {
		return "one"
	}
	return "all"
}

// FilterList combines filters. An empty list selects every cell. Members are
// evaluated in order and evaluation stops as soon as the outcome is known.
type FilterList struct {
	op      ListOp
	filters []Filter
}

// NewFilterList returns a list combining filters with op.
func NewFilterList(op ListOp, filters ...Filter) *FilterList {
	return &FilterList{op: op, filters: filters}
}

// Match implements Filter.
func (l *FilterList) Match(c *cell.Cell) (bool, error) {
	if len(l.filters) == 0 {
		return true, nil
	}
	for _, f := range l.filters {
		ok, err := f.Match(c)
		if err != nil {
			return false, err
		}
		if l.op == MustPassOne && ok {
			return true, nil
		}
		if l.op == MustPassAll && !ok {
			return false, nil
		}
	}
	return l.op == MustPassAll, nil
}

// Len returns the number of member filters.
func (l *FilterList) Len() int { return len(l.filters) }
