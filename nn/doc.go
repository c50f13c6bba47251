// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on scalar autodiff values.
//
// # Overview
//
// This package contains:
//   - Module interface: anything that owns trainable parameters
//   - Neuron, Layer, MLP: fully connected networks with ReLU hidden layers
//   - Loss functions: MSELoss, HingeLoss, L2Penalty
//   - Metrics: Accuracy, Scores, Evaluate
//   - Utilities: ZeroGrad, CountParameters, Snapshot, Restore, Grads
//   - Initialization: Uniform, Zeros
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/scalar/nn"
//	    "github.com/born-ml/scalar/optim"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(1337))
//	    model := nn.NewMLP(2, []int{16, 16, 1}, rng)
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	    for step := range 100 {
//	        scores := make([]*autodiff.Value, len(xs))
//	        for i, x := range xs {
//	            scores[i] = model.Predict(x)[0]
//	        }
//	        loss := nn.HingeLoss(scores, ys)
//
//	        optimizer.ZeroGrad()
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// # Layers
//
// Neuron: b + Σ wᵢxᵢ, optionally followed by ReLU. Weights start in U(-1, 1)
// and the bias at 0.
//
// Layer: nout neurons reading the same nin inputs.
//
// MLP: layers chained in order. Every layer except the last applies ReLU.
//
// # Parameters
//
// Parameters are ordinary leaf values. Parameter order is stable: layer by
// layer, neuron by neuron, weights before bias. Snapshot and Restore rely on
// that order.
package nn
