// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//   - ClipGradNorm and LinearDecay helpers for training loops
//
// Optimizers read the Grad of every parameter leaf, as filled in by
// Backward, and write the updated Data back in place.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range steps {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss(model, batch)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import "github.com/born-ml/scalar/internal/autodiff"

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update to all parameters using their current gradients.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Backward accumulates, so this should be called before each backward pass.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR changes the learning rate used by subsequent steps.
	SetLR(lr float64)
}

// data gathers the data of params into dst, which is grown as needed.
func data(params []*autodiff.Value, dst []float64) []float64 {
	dst = resize(dst, len(params))
	for i, p := range params {
		dst[i] = p.Data()
	}
	return dst
}

// grads gathers the gradients of params into dst, which is grown as needed.
func grads(params []*autodiff.Value, dst []float64) []float64 {
	dst = resize(dst, len(params))
	for i, p := range params {
		dst[i] = p.Grad()
	}
	return dst
}

// setData writes src back into the data of params.
func setData(params []*autodiff.Value, src []float64) {
	for i, p := range params {
		p.SetData(src[i])
	}
}

func zeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}
