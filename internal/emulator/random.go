package emulator

import (
	"math/rand/v2"
	"time"
)

// Random is the source of random numbers used by the random masked set
// instruction.
type Random interface {
	// Range returns a uniformly distributed number in the inclusive range lo..hi.
	Range(lo, hi int) int
}

// Compile-time check to ensure seededRandom implements Random.
var _ Random = (*seededRandom)(nil)

type seededRandom struct {
	rng *rand.Rand
}

// NewRandom returns a deterministic random source for the given seed.
func NewRandom(seed uint64) Random {
	return &seededRandom{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Range returns a uniformly distributed number in lo..hi.
// If hi is lower than lo, lo is returned.
func (r *seededRandom) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.IntN(hi-lo+1)
}

// timeSeed returns a seed derived from the current time.
func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
