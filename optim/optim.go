// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/scalar/autodiff"
	"github.com/born-ml/scalar/internal/optim"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer = optim.Optimizer

// SGD implements Stochastic Gradient Descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01, Momentum: 0.9})
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam implements the Adam optimizer.
type Adam = optim.Adam

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
//
// Example:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.001})
func NewAdam(params []*autodiff.Value, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}

// ErrStateSize is returned by LoadStateDict on a state of the wrong size.
var ErrStateSize = optim.ErrStateSize

// GradNorm returns the L2 norm of the gradients of params.
func GradNorm(params []*autodiff.Value) float64 {
	return optim.GradNorm(params)
}

// ClipGradNorm rescales gradients to a joint L2 norm of at most maxNorm and
// returns the norm before clipping.
func ClipGradNorm(params []*autodiff.Value, maxNorm float64) float64 {
	return optim.ClipGradNorm(params, maxNorm)
}

// LinearDecay interpolates the learning rate from base to final over total steps.
func LinearDecay(base, final float64, step, total int) float64 {
	return optim.LinearDecay(base, final, step, total)
}
