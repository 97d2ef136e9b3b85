package nn

import "math/rand"

// Uniform returns a fresh parameter value drawn uniformly from [-1, 1).
//
// All Neuron weights and biases are initialized this way. A nil rng falls
// back to the shared math/rand source; tests pass a seeded *rand.Rand for
// reproducible networks.
func Uniform(rng *rand.Rand) float64 {
	if rng == nil {
		//nolint:gosec // math/rand is fine for weight initialization
		return rand.Float64()*2 - 1
	}
	return rng.Float64()*2 - 1
}
