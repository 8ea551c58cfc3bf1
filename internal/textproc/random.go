// internal/textproc/random.go
package textproc

import "math/rand/v2"

// Rand is the randomness used to pick context windows and cursor positions.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand. A zero seed draws the seed from the
// runtime's entropy source, so runs are not reproducible.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
