// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/scalar/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModuleInterface verifies that concrete types implement Module interface.
func TestModuleInterface(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name   string
		module nn.Module
		count  int
	}{
		{name: "Neuron", module: nn.NewNeuron(3, true, rng), count: 4},
		{name: "Layer", module: nn.NewLayer(3, 2, true, rng), count: 8},
		{name: "MLP", module: nn.NewMLP(3, []int{4, 1}, rng), count: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.module.Parameters()
			require.Len(t, params, tt.count)
			assert.Equal(t, tt.count, nn.CountParameters(tt.module))
			for _, p := range params {
				assert.True(t, p.IsLeaf())
			}
		})
	}
}

// TestTrainingRoundTrip runs a few manual SGD steps through the public API.
func TestTrainingRoundTrip(t *testing.T) {
	model := nn.NewMLP(1, []int{1}, rand.New(rand.NewSource(1)))
	require.NoError(t, nn.Restore(model, []float64{0, 0}))

	xs := [][]float64{{1}, {2}, {3}}
	targets := nn.Zeros(3)
	for i := range targets {
		targets[i].SetData(2*xs[i][0] + 1)
	}

	loss := func() *nn.Value {
		preds := make([]*nn.Value, len(xs))
		for i, x := range xs {
			preds[i] = model.Predict(x)[0]
		}
		return nn.MSELoss(preds, targets)
	}

	first := loss().Data()
	for range 200 {
		nn.ZeroGrad(model)
		l := loss()
		l.Backward()
		for _, p := range model.Parameters() {
			p.SetData(p.Data() - 0.05*p.Grad())
		}
	}

	assert.Less(t, loss().Data(), first)
	assert.InDelta(t, 2.0, nn.Snapshot(model)[0], 0.1)
	assert.InDelta(t, 1.0, nn.Snapshot(model)[1], 0.2)

	scores := nn.Scores(model, xs, nn.SequentialEval())
	assert.Equal(t, 1.0, nn.Accuracy(scores, []float64{1, 1, 1}))
}
