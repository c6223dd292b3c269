// Package pool provides size-classed byte buffer pools for decoded cell blocks.
// Uses sync.Pool for automatic memory reuse; cells decoded into a pooled buffer
// borrow it until the owning block is released.
package pool

import (
	"sync"
	"sync/atomic"
)

const (
	// DefaultMinSize is the smallest size class (4 KiB).
	DefaultMinSize = 4 << 10

	// DefaultClasses is the number of power-of-two size classes (4 KiB .. 512 KiB).
	DefaultClasses = 8
)

// Buffers is a pool of byte slices bucketed by power-of-two capacity.
// Requests larger than the biggest class are allocated directly and not retained.
type Buffers struct {
	sizes []int
	pools []sync.Pool

	gets   atomic.Uint64
	misses atomic.Uint64
	puts   atomic.Uint64
}

// NewBuffers creates a pool with classes size classes starting at minSize.
func NewBuffers(minSize, classes int) *Buffers {
	if minSize <= 0 {
		minSize = DefaultMinSize
	}
	if classes <= 0 {
		classes = DefaultClasses
	}
	p := &Buffers{
		sizes: make([]int, classes),
		pools: make([]sync.Pool, classes),
	}
	for i := range p.sizes {
		p.sizes[i] = minSize << i
	}
	return p
}

// Default is the process-wide pool used by the block decoder.
var Default = NewBuffers(DefaultMinSize, DefaultClasses)

func (p *Buffers) class(n int) int {
	for i, size := range p.sizes {
		if n <= size {
			return i
		}
	}
	return -1
}

// Get returns a buffer of length n. Its contents are undefined.
func (p *Buffers) Get(n int) []byte {
	p.gets.Add(1)
	idx := p.class(n)
	if idx < 0 {
		p.misses.Add(1)
		return make([]byte, n)
	}
	if v := p.pools[idx].Get(); v != nil {
		return (*(v.(*[]byte)))[:n]
	}
	p.misses.Add(1)
	return make([]byte, n, p.sizes[idx])
}

// Put returns b to the pool. The caller must not use b, or any view of it,
// afterwards.
func (p *Buffers) Put(b []byte) {
	idx := p.class(cap(b))
	if idx < 0 || cap(b) != p.sizes[idx] {
		// Oversized or foreign buffer: let the GC have it.
		return
	}
	p.puts.Add(1)
	b = b[:0]
	p.pools[idx].Put(&b)
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Gets   uint64
	Misses uint64
	Puts   uint64
}

// Stats returns current pool counters.
func (p *Buffers) Stats() Stats {
	return Stats{
		Gets:   p.gets.Load(),
		Misses: p.misses.Load(),
		Puts:   p.puts.Load(),
	}
}
