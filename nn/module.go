// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/scalar/autodiff"
	"github.com/born-ml/scalar/internal/nn"
)

// Value is a scalar autodiff node.
type Value = autodiff.Value

// Module is the base interface for all neural network components.
//
// Parameters returns the trainable leaves of the module in a stable order:
//
//	for _, p := range model.Parameters() {
//	    p.SetData(p.Data() - lr*p.Grad())
//	}
type Module = nn.Module

// ErrParameterCount is returned by Restore on a snapshot of the wrong size.
var ErrParameterCount = nn.ErrParameterCount

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// CountParameters returns the number of trainable scalars in m.
func CountParameters(m Module) int {
	return nn.CountParameters(m)
}

// Snapshot copies the data of every parameter of m.
func Snapshot(m Module) []float64 {
	return nn.Snapshot(m)
}

// Restore writes data back into the parameters of m.
func Restore(m Module, data []float64) error {
	return nn.Restore(m, data)
}

// Grads copies the gradient of every parameter of m.
func Grads(m Module) []float64 {
	return nn.Grads(m)
}

// Checkpoint represents a training state snapshot saved as SafeTensors.
type Checkpoint = nn.Checkpoint

// OptimizerState represents an optimizer that can save/load its state.
type OptimizerState = nn.OptimizerState

// ErrCheckpointMismatch is returned when a checkpoint does not fit the model.
var ErrCheckpointMismatch = nn.ErrCheckpointMismatch

// LoadCheckpoint reads a checkpoint into model and, when not nil, optimizer.
//
// Example:
//
//	ckpt, err := nn.LoadCheckpoint("model.safetensors", model, optimizer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	start := ckpt.Step + 1
func LoadCheckpoint(path string, model *MLP, optimizer OptimizerState) (*Checkpoint, error) {
	return nn.LoadCheckpoint(path, model, optimizer)
}
