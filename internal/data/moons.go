// Package data provides small synthetic datasets for classification demos.
package data

import (
	"math"
	"math/rand"
)

// Moons generates n points on two interleaving half circles.
//
// The upper moon is centred at (0, 0) with label -1, the lower moon is
// centred at (1, 0.5) with label +1. Gaussian noise with standard deviation
// noise is added to both coordinates, and the samples are shuffled.
//
// The upper moon gets n/2 points and the lower one the rest.
//
//nolint:gosec // Using math/rand for synthetic data (not security-critical)
func Moons(n int, noise float64, rng *rand.Rand) (xs [][]float64, ys []float64) {
	if n <= 0 {
		return nil, nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	nOuter := n / 2
	nInner := n - nOuter

	xs = make([][]float64, 0, n)
	ys = make([]float64, 0, n)
	for _, t := range linspace(0, math.Pi, nOuter) {
		xs = append(xs, []float64{math.Cos(t), math.Sin(t)})
		ys = append(ys, -1)
	}
	for _, t := range linspace(0, math.Pi, nInner) {
		xs = append(xs, []float64{1 - math.Cos(t), 1 - math.Sin(t) - 0.5})
		ys = append(ys, 1)
	}

	if noise > 0 {
		for _, x := range xs {
			x[0] += rng.NormFloat64() * noise
			x[1] += rng.NormFloat64() * noise
		}
	}

	rng.Shuffle(n, func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
		ys[i], ys[j] = ys[j], ys[i]
	})
	return xs, ys
}

// linspace returns n evenly spaced values over [lo, hi].
func linspace(lo, hi float64, n int) []float64 {
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}
