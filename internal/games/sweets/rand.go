package sweets

import "math/rand"

// Rand is the randomness the spawner consumes. *rand.Rand satisfies it;
// tests substitute fixed sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded generator.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
