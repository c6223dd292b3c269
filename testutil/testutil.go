package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// keyAlphabet is deliberately small so that random keys share prefixes and
// collide often, which is where comparator bugs live.
const keyAlphabet = "abAB01\x00\xff"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // test data only
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63 returns a pseudo-random signed integer covering the full int64 range.
func (r *RNG) Int63() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(r.rand.Uint64()) //nolint:gosec // full range on purpose
}

// Bytes returns n uniformly random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// Key returns a random key of length in [minLen, maxLen] drawn from a small
// alphabet that includes upper case letters and the extreme byte values.
func (r *RNG) Key(minLen, maxLen int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := minLen
	if maxLen > minLen {
		n += r.rand.Intn(maxLen - minLen + 1)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = keyAlphabet[r.rand.Intn(len(keyAlphabet))]
	}
	return b
}

// Zipf returns an index in [0, n) following a Zipf distribution with exponent s.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 1 {
		return 0
	}
	if s <= 1 {
		s = 1.0001
	}
	z := rand.NewZipf(r.rand, s, 1, uint64(n-1)) //nolint:gosec // n > 1
	return int(math.Min(float64(z.Uint64()), float64(n-1)))
}
