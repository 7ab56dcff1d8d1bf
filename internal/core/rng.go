package core

import "math/rand/v2"

// NewRNG creates a deterministic PCG-backed source from seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Randomize overwrites every cell, making each one live with the given
// probability. The same seed always produces the same board.
func Randomize(g *Grid, seed int64, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	r := NewRNG(seed)
	for i := range g.cur {
		g.cur[i] = r.Float64() < density
	}
}
