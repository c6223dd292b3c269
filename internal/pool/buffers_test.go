package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffers_GetPut(t *testing.T) {
	p := NewBuffers(16, 3) // 16, 32, 64

	b := p.Get(10)
	assert.Len(t, b, 10)
	assert.Equal(t, 16, cap(b))

	b = p.Get(33)
	assert.Len(t, b, 33)
	assert.Equal(t, 64, cap(b))
	p.Put(b)

	big := p.Get(65)
	assert.Len(t, big, 65)
	p.Put(big) // dropped

	s := p.Stats()
	assert.Equal(t, uint64(3), s.Gets)
	assert.Equal(t, uint64(1), s.Puts)
	assert.GreaterOrEqual(t, s.Misses, uint64(1))
}

func TestBuffers_ForeignBufferIgnored(t *testing.T) {
	p := NewBuffers(16, 2)
	p.Put(make([]byte, 20))
	assert.Equal(t, uint64(0), p.Stats().Puts)
}

func TestBuffers_Defaults(t *testing.T) {
	p := NewBuffers(0, 0)
	assert.Len(t, p.sizes, DefaultClasses)
	assert.Equal(t, DefaultMinSize, p.sizes[0])
	assert.Equal(t, DefaultMinSize<<(DefaultClasses-1), p.sizes[DefaultClasses-1])
}
