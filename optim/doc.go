// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//   - ClipGradNorm and LinearDecay for training loops
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalar/nn"
//	    "github.com/born-ml/scalar/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLP(2, []int{16, 16, 1}, rng)
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 1.0})
//
//	    for step := range steps {
//	        optimizer.SetLR(optim.LinearDecay(1.0, 0.1, step, steps))
//
//	        optimizer.ZeroGrad()
//	        loss := computeLoss(model)
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// # Optimizers
//
// SGD (Stochastic Gradient Descent):
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
// Adam (Adaptive Moment Estimation):
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	})
package optim
