// Package block stores cells in framed, optionally compressed blocks and hands them
// back as buffer-backed cells.
//
// # Format
//
//	header: [magic u32][version u8][compression u8]
//	frame:  [uncompressedSize u32][compressedSize u32][data...]   (repeated)
//	data:   [cellLen u32][cell bytes]...                          (after decompression)
//
// Frame and cell-length integers are little endian; the cells themselves use the
// big endian layout of package cell. A compressedSize of 0 marks a frame stored raw.
//
// # Ownership
//
// Cells obtained from a Block borrow the block's payload. For raw frames the payload
// is the caller's input (or the file mapping); for compressed frames it is a pooled
// decode buffer. Block.Release and File.Close hand that memory back, after which no
// cell from the block may be used.
package block
