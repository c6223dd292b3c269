package cellkit

import (
	"github.com/hupe1980/cellkit/cell"
	"github.com/hupe1980/cellkit/comparator"
)

// CompareField compares field f of c against cmp and returns the comparator result
// unchanged. The field is read as a view of the cell's backing; nothing is copied.
func CompareField(c *cell.Cell, f cell.Field, cmp comparator.Comparator) (int, error) {
	off, n, err := c.Locate(f)
	if err != nil {
		return 0, err
	}
	v, err := c.Backing().Read(off, n)
	if err != nil {
		return 0, err
	}
	return cmp.Compare(v)
}

// CompareRow compares the row key of c against cmp.
func CompareRow(c *cell.Cell, cmp comparator.Comparator) (int, error) {
	return CompareField(c, cell.FieldRow, cmp)
}

// CompareFamily compares the column family of c against cmp.
func CompareFamily(c *cell.Cell, cmp comparator.Comparator) (int, error) {
	return CompareField(c, cell.FieldFamily, cmp)
}

// CompareQualifier compares the column qualifier of c against cmp.
func CompareQualifier(c *cell.Cell, cmp comparator.Comparator) (int, error) {
	return CompareField(c, cell.FieldQualifier, cmp)
}

// CompareValue compares the value of c against cmp.
func CompareValue(c *cell.Cell, cmp comparator.Comparator) (int, error) {
	return CompareField(c, cell.FieldValue, cmp)
}
