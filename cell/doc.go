// Package cell implements the serialized cell layout and the field locator.
//
// A cell is one contiguous byte range:
//
//	[valueLen u32][rowLen u16][row][familyLen u8][family][qualifier][value][timestamp i64][type u8]
//
// All integers are big endian. The qualifier has no prefix of its own: it spans from
// the end of the family to the start of the value, and the value is located from the
// end of the cell using valueLen. The timestamp and type tag are a fixed 9-byte trailer.
//
// Cells never copy their bytes. A Cell sits on top of a backing.Backing, either an
// owned array or a borrowed buffer, and every accessor returns a view into it. The
// views must be treated as read-only.
package cell
