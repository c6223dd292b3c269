// Package backing provides addressable, read-only byte storage for cells.
//
// Two implementations exist:
//
//   - Array owns its byte slice. Offsets are absolute into that slice.
//   - Buffer borrows a window [base, base+length) of a slice owned by someone else,
//     typically a pooled decode buffer or a memory-mapped file. Offsets are relative
//     to base.
//
// Everything above this package (field location, comparison) is written against the
// Backing interface only, so both variants produce bit-identical views for the same
// logical content.
//
// # Lifetime
//
// A Buffer does not keep its memory alive in any meaningful way for mmap or pooled
// memory. The owner must not unmap or recycle the region until every reader holding a
// Buffer (or a view returned by Read) has finished.
package backing
