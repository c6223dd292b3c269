// Package mmap provides read-only memory-mapped file access for cell block files.
//
// # Overview
//
// A mapped block file is the archetypal borrowed backing: cells are handed out as
// windows over the mapping without copying, and the mapping must outlive them.
//
// # Usage
//
//	m, err := mmap.Open("cells.blk")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()             // zero-copy view of the whole file
//	hdr, _ := m.Region(0, 6)      // bounds-checked view
//	m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// # Thread Safety
//
// A Mapping is safe for concurrent reads. Close is idempotent, but callers must
// ensure no goroutine touches a view after Close returns.
package mmap
