package core

import "math/rand/v2"

// Chooser is the single source of uniform random selection. IntN returns a
// value in [0, n) and panics when n <= 0.
type Chooser interface {
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a uniformly distributed int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}
