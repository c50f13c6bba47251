package nn

import (
	"math/rand"
	"strings"

	"github.com/born-ml/scalar/internal/autodiff"
)

// MLP is a multi-layer perceptron.
//
// Every layer applies ReLU except the last one, which is linear so that the
// network can output negative scores.
//
// Example:
//
//	// 2 inputs, two hidden layers of 16, one output score
//	model := nn.NewMLP(2, []int{16, 16, 1}, rand.New(rand.NewSource(1337)))
//	score := model.Predict([]float64{0.5, -1})[0]
type MLP struct {
	layers []*Layer
}

// NewMLP creates a network with nin inputs and one layer per entry of nouts.
func NewMLP(nin int, nouts []int, rng *rand.Rand) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range nouts {
		layers[i] = NewLayer(sizes[i], sizes[i+1], i != len(nouts)-1, rng)
	}
	return &MLP{layers: layers}
}

// Forward feeds x through every layer in order.
func (m *MLP) Forward(x []*autodiff.Value) []*autodiff.Value {
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// Predict lifts raw inputs to fresh leaves and runs Forward.
func (m *MLP) Predict(x []float64) []*autodiff.Value {
	in := make([]*autodiff.Value, len(x))
	for i, v := range x {
		in[i] = autodiff.New(v)
	}
	return m.Forward(in)
}

// Layers returns the layers of the network.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Parameters returns the parameters of every layer, layer by layer.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// String implements fmt.Stringer.
func (m *MLP) String() string {
	names := make([]string, len(m.layers))
	for i, l := range m.layers {
		names[i] = l.String()
	}
	return "MLP of [" + strings.Join(names, ", ") + "]"
}
