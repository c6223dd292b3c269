// Package conv provides checked integer conversions for the cell and block encoders.
//
// Length prefixes in the cell layout and block frames are fixed-width unsigned
// integers. Every conversion from a Go int into one of those widths goes through
// this package so that oversized fields are rejected instead of silently wrapped.
//
// For conversions that are provably safe by construction (loop indices, values
// already range-checked) use a direct cast instead.
package conv
