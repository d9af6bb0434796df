package brackets

import (
	"math/rand/v2"
)

// Randomizer is the source of randomness used for seeding brackets.
type Randomizer interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

type globalRandomizer struct{}

func (globalRandomizer) IntN(n int) int { return rand.IntN(n) }

// DefaultRandomizer draws from the process-wide math/rand/v2 source and is
// safe for concurrent use.
func DefaultRandomizer() Randomizer { return globalRandomizer{} }

// NewSeededRandomizer returns a reproducible randomizer. It is not safe for
// concurrent use.
func NewSeededRandomizer(seed uint64) Randomizer {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) // #nosec G404
}

// Shuffle returns a uniformly random permutation of items using Fisher-Yates.
// The input is left untouched.
func Shuffle[T any](rnd Randomizer, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
