// Package rng provides the random capability used by the simulation core.
// Every stochastic component draws through a Rand so a whole game can be
// replayed deterministically from a single seed.
package rng

import (
	"fmt"
	"math/rand"
	"time"
)

// Rand is the draw surface the simulation depends on.
type Rand interface {
	// IntBetween returns a uniform integer in [min, max] inclusive.
	IntBetween(min, max int) int
	// FloatBetween returns a uniform float in [min, max).
	FloatBetween(min, max float64) float64
	// Chance returns true with probability p (clamped to [0,1]).
	Chance(p float64) bool
	// Normal returns a Gaussian deviate with the given mean and stddev.
	Normal(mean, stddev float64) float64
	// Index returns a uniform integer in [0, n). Panics if n <= 0: selecting
	// from an empty pool is a caller bug, not a simulated-world outcome.
	Index(n int) int
}

type source struct {
	r *rand.Rand
}

// New returns a Rand seeded with the given value.
func New(seed int64) Rand {
	return &source{r: rand.New(rand.NewSource(seed))}
}

// NewFromClock returns a Rand seeded from the wall clock.
func NewFromClock() Rand {
	return New(time.Now().UnixNano())
}

func (s *source) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.r.Intn(max-min+1)
}

func (s *source) FloatBetween(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + s.r.Float64()*(max-min)
}

func (s *source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

func (s *source) Normal(mean, stddev float64) float64 {
	return mean + s.r.NormFloat64()*stddev
}

func (s *source) Index(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: Index called with n=%d", n))
	}
	return s.r.Intn(n)
}

// Pick returns a uniformly chosen element of items. Panics on an empty slice.
func Pick[T any](r Rand, items []T) T {
	return items[r.Index(len(items))]
}
