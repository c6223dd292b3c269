package block

import (
	"fmt"

	"github.com/hupe1980/cellkit/internal/mmap"
)

// File is a memory-mapped block file. Raw frames are served straight from the
// mapping, so cells of an uncompressed file never touch the Go heap.
type File struct {
	m      *mmap.Mapping
	blocks []*Block
	size   int
}

// Open maps the block file at path and decodes its frame index.
func Open(path string) (*File, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("block: open %s: %w", path, err)
	}
	// Block files are read front to back by scans.
	_ = m.Advise(mmap.AccessSequential)

	blocks, err := Decode(m.Bytes())
	if err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("block: open %s: %w", path, err)
	}
	return &File{m: m, blocks: blocks, size: m.Size()}, nil
}

// Blocks returns the decoded blocks. They are owned by the File.
func (f *File) Blocks() []*Block { return f.blocks }

// Size returns the file size in bytes.
func (f *File) Size() int { return f.size }

// Cells returns the total number of cells in the file.
func (f *File) Cells() int {
	n := 0
	for _, b := range f.blocks {
		n += b.Len()
	}
	return n
}

// Close releases every block and unmaps the file. Cells obtained from the file
// must not be used afterwards.
func (f *File) Close() error {
	for _, b := range f.blocks {
		b.Release()
	}
	return f.m.Close()
}
