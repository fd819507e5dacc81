package match3

import (
	"math/rand/v2"
	"time"
)

// Source is the random number source consumed by the generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform value in [0, n). n is always > 0.
	IntN(n int) int
}

// NewSource returns a PCG-backed source. The same seed always yields the
// same sequence.
func NewSource(seed int64) Source {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

func timeSource() Source {
	return NewSource(time.Now().UnixNano())
}
