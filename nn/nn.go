// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/parallel"
)

// Layers

// Neuron computes b + Σ wᵢxᵢ, followed by ReLU when nonlinear.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, nonlin bool, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nin, nonlin, rng)
}

// Layer is a row of neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(nin, nout int, nonlin bool, rng *rand.Rand) *Layer {
	return nn.NewLayer(nin, nout, nonlin, rng)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates a network with nin inputs and one layer per entry of nouts.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1}, rand.New(rand.NewSource(1337)))
func NewMLP(nin int, nouts []int, rng *rand.Rand) *MLP {
	return nn.NewMLP(nin, nouts, rng)
}

// Losses

// MSELoss returns mean((pᵢ - tᵢ)²).
func MSELoss(predictions, targets []*Value) *Value {
	return nn.MSELoss(predictions, targets)
}

// HingeLoss returns mean(max(0, 1 - yᵢ·sᵢ)) for labels yᵢ in {-1, +1}.
func HingeLoss(scores []*Value, labels []float64) *Value {
	return nn.HingeLoss(scores, labels)
}

// L2Penalty returns alpha · Σ p².
func L2Penalty(params []*Value, alpha float64) *Value {
	return nn.L2Penalty(params, alpha)
}

// Metrics

// EvalConfig controls how Scores and Evaluate spread samples over goroutines.
type EvalConfig = parallel.Config

// DefaultEvalConfig evaluates in parallel on every CPU.
func DefaultEvalConfig() EvalConfig {
	return parallel.DefaultConfig()
}

// SequentialEval evaluates on the calling goroutine.
func SequentialEval() EvalConfig {
	return parallel.Sequential()
}

// Accuracy returns the fraction of scores whose sign matches the label.
func Accuracy(scores, labels []float64) float64 {
	return nn.Accuracy(scores, labels)
}

// Scores runs forward-only passes of m over xs.
func Scores(m *MLP, xs [][]float64, cfg EvalConfig) []float64 {
	return nn.Scores(m, xs, cfg)
}

// Evaluate returns the accuracy of m on (xs, labels).
func Evaluate(m *MLP, xs [][]float64, labels []float64, cfg EvalConfig) float64 {
	return nn.Evaluate(m, xs, labels, cfg)
}

// Initialization

// Uniform creates n leaves drawn from U(low, high).
func Uniform(n int, low, high float64, rng *rand.Rand) []*Value {
	return nn.Uniform(n, low, high, rng)
}

// Zeros creates n leaves with data 0.
func Zeros(n int) []*Value {
	return nn.Zeros(n)
}
