package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalar/internal/autodiff"
)

// Neuron computes b + Σ wᵢxᵢ, followed by ReLU when nonlinear.
//
// Weights are initialized from U(-1, 1) and the bias to 0.
//
// Example:
//
//	n := nn.NewNeuron(3, true, rand.New(rand.NewSource(1)))
//	out := n.Forward([]*autodiff.Value{x0, x1, x2})
type Neuron struct {
	w      []*autodiff.Value
	b      *autodiff.Value
	nonlin bool
}

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, nonlin bool, rng *rand.Rand) *Neuron {
	return &Neuron{
		w:      Uniform(nin, -1, 1, rng),
		b:      autodiff.New(0),
		nonlin: nonlin,
	}
}

// Forward computes the neuron output for x.
//
// The bias is the first term of the sum, followed by wᵢxᵢ in input order.
// Panics if len(x) differs from the number of weights.
func (n *Neuron) Forward(x []*autodiff.Value) *autodiff.Value {
	if len(x) != len(n.w) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.w), len(x)))
	}

	act := n.b
	for i, wi := range n.w {
		act = act.Add(wi.Mul(x[i]))
	}

	if n.nonlin {
		return act.ReLU()
	}
	return act
}

// Weights returns the weight leaves.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.w
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *autodiff.Value {
	return n.b
}

// Nonlinear reports whether ReLU is applied to the output.
func (n *Neuron) Nonlinear() bool {
	return n.nonlin
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.w)+1)
	params = append(params, n.w...)
	return append(params, n.b)
}

// String implements fmt.Stringer.
func (n *Neuron) String() string {
	kind := "Linear"
	if n.nonlin {
		kind = "ReLU"
	}
	return fmt.Sprintf("%sNeuron(%d)", kind, len(n.w))
}
