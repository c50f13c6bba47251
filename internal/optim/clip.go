package optim

import (
	"github.com/born-ml/scalar/internal/autodiff"
	"gonum.org/v1/gonum/floats"
)

// GradNorm returns the L2 norm of the gradients of params.
func GradNorm(params []*autodiff.Value) float64 {
	return floats.Norm(grads(params, nil), 2)
}

// ClipGradNorm rescales the gradients of params so that their joint L2 norm
// is at most maxNorm. It returns the norm before clipping.
//
// Gradients are left untouched when the norm is already within bounds or
// maxNorm is not positive.
func ClipGradNorm(params []*autodiff.Value, maxNorm float64) float64 {
	g := grads(params, nil)
	norm := floats.Norm(g, 2)
	if maxNorm <= 0 || norm <= maxNorm {
		return norm
	}

	floats.Scale(maxNorm/norm, g)
	for i, p := range params {
		p.SetGrad(g[i])
	}
	return norm
}
