package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositions(t *testing.T) {
	rng := NewRNG(4711)

	pos := rng.Positions(64, 1000)

	assert.Len(t, pos, 64)
	for _, p := range pos {
		assert.Less(t, p, uint64(1000))
	}
}

func TestStrings(t *testing.T) {
	rng := NewRNG(4711)

	ss := rng.Strings(32, 2, 8)

	assert.Len(t, ss, 32)
	for _, s := range ss {
		assert.GreaterOrEqual(t, len(s), 2)
		assert.LessOrEqual(t, len(s), 8)
		for i := 0; i < len(s); i++ {
			assert.Contains(t, Printable, string(s[i]))
		}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.String(16)

	rng.Reset()

	assert.Equal(t, first, rng.String(16))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestUint64nPanicsOnZero(t *testing.T) {
	rng := NewRNG(1)
	assert.Panics(t, func() { rng.Uint64n(0) })
}
