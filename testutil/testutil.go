package testutil

import (
	"math/rand"
	"sync"
)

// Printable is the alphabet String draws from: every printable ASCII character.
const Printable = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

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
		rand: rand.New(rand.NewSource(seed)),
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

// Uint64n returns a pseudo-random number in [0,n). It panics if n == 0.
func (r *RNG) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("testutil: Uint64n with n == 0")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64() % n
}

// Positions returns num pseudo-random bit positions in [0,limit).
// Duplicates are possible.
func (r *RNG) Positions(num int, limit uint64) []uint64 {
	pos := make([]uint64, num)
	for i := range pos {
		pos[i] = r.Uint64n(limit)
	}
	return pos
}

// String returns a pseudo-random string of n printable ASCII characters.
func (r *RNG) String(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]byte, n)
	for i := range b {
		b[i] = Printable[r.rand.Intn(len(Printable))]
	}
	return string(b)
}

// Strings returns num pseudo-random strings with lengths in [minLen,maxLen].
func (r *RNG) Strings(num, minLen, maxLen int) []string {
	out := make([]string, num)
	for i := range out {
		out[i] = r.String(minLen + r.Intn(maxLen-minLen+1))
	}
	return out
}
