package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicWithSeed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.FloatBetween(0, 1), b.FloatBetween(0, 1))
	}
}

func TestIntBetweenInclusive(t *testing.T) {
	r := New(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := r.IntBetween(1, 3)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 3, "all values in the range should occur")
}

func TestFloatBetweenBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.FloatBetween(-0.5, 0.5)
		require.GreaterOrEqual(t, v, -0.5)
		require.Less(t, v, 0.5)
	}
}

func TestChance(t *testing.T) {
	r := New(11)
	assert.False(t, r.Chance(0))
	assert.True(t, r.Chance(1))

	hits := 0
	for i := 0; i < 10000; i++ {
		if r.Chance(0.3) {
			hits++
		}
	}
	assert.InDelta(t, 3000, hits, 300)
}

func TestNormalMoments(t *testing.T) {
	r := New(13)
	var sum float64
	n := 20000
	for i := 0; i < n; i++ {
		sum += r.Normal(0.5, 0.1)
	}
	assert.InDelta(t, 0.5, sum/float64(n), 0.01)
}

func TestIndexPanicsOnEmpty(t *testing.T) {
	r := New(1)
	assert.Panics(t, func() { r.Index(0) })
}

func TestPick(t *testing.T) {
	r := New(3)
	items := []string{"x", "y", "z"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, items, Pick(r, items))
	}
}
