// Package cellkit compares individual fields of serialized cells against patterns
// without copying the cell.
//
// Cells are immutable byte ranges laid out by package cell. They can be backed by an
// owned byte slice or by borrowed memory such as a pooled decode buffer or a
// memory-mapped block file (package backing). Comparators (package comparator) hold
// a pattern and a comparison mode. The dispatch functions in this package bind the
// two together:
//
//	c, _ := cell.Build(cell.KeyValue{Row: []byte("row1"), Family: []byte("cf1")})
//	r, err := cellkit.CompareRow(c, comparator.NewBinary([]byte("row1"))) // r == 0
//
// The result is identical for every backing holding the same bytes.
//
// # Filters
//
// Field filters turn a comparator result into a match decision using a CompareOp,
// read as "field OP pattern":
//
//	f, _ := cellkit.NewQualifierFilter(cellkit.Equal, comparator.NewBinaryPrefix([]byte("qual")))
//	ok, err := f.Match(c)
//
// Predicate comparators (substring, regex, null, bit) only accept Equal and NotEqual.
// Filters can be combined with FilterList and described declaratively with FilterSpec.
//
// # Scanning
//
// A Scanner evaluates a filter over decoded cell blocks (package block), in parallel
// across blocks and optionally throttled, and reports the matching cell ordinals of
// each block as a roaring bitmap:
//
//	s := cellkit.NewScanner(f, cellkit.WithConcurrency(4))
//	matches, err := s.ScanAll(ctx, blocks)
//
// # Concurrency
//
// Cells and comparators are immutable; comparisons take no locks and do not allocate.
// Borrowed memory must outlive every reader; see package backing.
package cellkit
