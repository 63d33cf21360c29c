package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandReproducibility(t *testing.T) {
	r1 := New(12345)
	r2 := New(12345)

	for i := 0; i < 100; i++ {
		require.Equal(t, r1.Between(1, 6), r2.Between(1, 6), "roll %d", i)
		require.Equal(t, r1.Coin(), r2.Coin(), "flip %d", i)
	}
}

func TestBetweenStaysInRange(t *testing.T) {
	r := New(7)
	seen := map[int]bool{}

	for i := 0; i < 1000; i++ {
		v := r.Between(1, 6)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
		seen[v] = true
	}

	assert.Len(t, seen, 6, "every face should come up in 1000 rolls")
}

func TestBetweenSingleValue(t *testing.T) {
	r := New(1)
	assert.Equal(t, 4, r.Between(4, 4))
}

func TestBetweenPanicsOnEmptyRange(t *testing.T) {
	r := New(1)
	assert.Panics(t, func() { r.Between(6, 1) })
}

func TestPositionCountsDraws(t *testing.T) {
	r := New(99)
	assert.Equal(t, int64(0), r.Position())

	r.Coin()
	r.Between(1, 6)
	r.Between(1, 6)

	assert.Equal(t, int64(3), r.Position())
	assert.Equal(t, int64(99), r.Seed())
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
