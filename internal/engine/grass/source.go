package grass

import (
	"math/rand/v2"
	"time"
)

// NewSource returns a PCG generator for seed and the seed actually used.
// Seed 0 picks one from the clock, so runs differ unless a seed is pinned.
func NewSource(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}
