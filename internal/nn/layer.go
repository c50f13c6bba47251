package nn

import (
	"math/rand"
	"strings"

	"github.com/born-ml/scalar/internal/autodiff"
)

// Layer is a row of nout neurons that all read the same nin inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(nin, nout int, nonlin bool, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, nonlin, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(x []*autodiff.Value) []*autodiff.Value {
	out := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// inputs returns the number of inputs each neuron reads.
func (l *Layer) inputs() int {
	if len(l.neurons) == 0 {
		return 0
	}
	return len(l.neurons[0].w)
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// Parameters returns the parameters of every neuron, neuron by neuron.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	names := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		names[i] = n.String()
	}
	return "Layer of [" + strings.Join(names, ", ") + "]"
}
