// Package nn implements neural network modules on top of the scalar autodiff engine.
//
// This package provides building blocks for small multi-layer perceptrons:
//   - Module interface: anything that owns trainable parameters
//   - Neuron: weighted sum of inputs plus bias, optionally followed by ReLU
//   - Layer: a row of independent neurons sharing the same inputs
//   - MLP: layers chained so each layer feeds the next
//   - Losses: MSE, hinge (max-margin), L2 penalty
//
// Every parameter is a leaf *autodiff.Value, so a forward pass builds an
// ordinary computation graph and Backward on the loss fills in parameter
// gradients.
package nn

import "github.com/born-ml/scalar/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Parameters returns the trainable leaves of the module in a stable order.
// Modules without parameters return an empty slice.
type Module interface {
	Parameters() []*autodiff.Value
}

// ZeroGrad resets the gradient of every parameter of m.
//
// Backward adds to existing gradients, so this must run before each
// backward pass of a training loop.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// CountParameters returns the number of trainable scalars in m.
func CountParameters(m Module) int {
	return len(m.Parameters())
}
