package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillDensity sets each slot to age 1 with the given probability and 0
// otherwise. Density is clamped to [0, 1].
func FillDensity(r *rand.Rand, buf []uint8, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	for i := range buf {
		if r.Float64() < density {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
}
