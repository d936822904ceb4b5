package gen

import "math/rand"

// Random is a reseedable source of inclusive integer ranges.
type Random struct {
	r *rand.Rand
}

// NewRandom returns a Random seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// Seed restarts the sequence.
func (r *Random) Seed(seed int64) {
	r.r.Seed(seed)
}

// IntInRange returns a value in [lo, hi].
func (r *Random) IntInRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Intn(hi-lo+1)
}
