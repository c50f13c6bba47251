package nn

import (
	"math/rand"

	"github.com/born-ml/scalar/internal/autodiff"
)

// Uniform creates n leaves drawn from U(low, high).
//
// A nil rng uses the global math/rand source.
func Uniform(n int, low, high float64, rng *rand.Rand) []*autodiff.Value {
	vs := make([]*autodiff.Value, n)
	for i := range vs {
		vs[i] = autodiff.New(low + (high-low)*randFloat(rng))
	}
	return vs
}

// Zeros creates n leaves holding 0.
func Zeros(n int) []*autodiff.Value {
	vs := make([]*autodiff.Value, n)
	for i := range vs {
		vs[i] = autodiff.New(0)
	}
	return vs
}

//nolint:gosec // Using math/rand for weight initialization (not security-critical)
func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}
