// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every arithmetic operation on a *Value creates a new node that remembers its
// operands, so evaluating an expression builds the computation graph as a side
// effect. Calling Backward on the final node then walks the graph once in
// reverse topological order and accumulates ∂output/∂node into every ancestor.
//
// Architecture:
//   - Value: graph node and the scalar it holds (data, grad, parents, op tag)
//   - Op: tag selecting one of four primitive backward rules (add, mul, pow, relu)
//   - Derived ops (Neg, Sub, Div, Sum): compositions of the primitives only
//   - Lift and the package-level functions: mixed Value/number operands
//
// Usage:
//
//	x := autodiff.New(3)
//	y := x.Mul(x).Add(x) // y = x² + x
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x + 1 = 7
package autodiff

import "fmt"

// Value is a node of the computation graph holding a scalar and its gradient.
//
// A Value is created once, by New or by an operation, and never changes
// afterwards except for its gradient (and its data, when an optimizer updates
// a leaf parameter between forward passes).
type Value struct {
	data     float64
	grad     float64
	operands []*Value // Arguments in call order; x*x stores x twice
	parents  []*Value // Operands deduplicated by identity
	op       Op
	exponent float64 // Constant exponent, OpPow only
}

// New creates a leaf value with zero gradient and no parents.
func New(data float64) *Value {
	return &Value{data: data}
}

// newNode creates the output node of an operation.
// The parent list keeps the first occurrence of every operand.
func newNode(data float64, op Op, operands ...*Value) *Value {
	parents := make([]*Value, 0, len(operands))
	for _, o := range operands {
		if !containsValue(parents, o) {
			parents = append(parents, o)
		}
	}
	return &Value{
		data:     data,
		operands: operands,
		parents:  parents,
		op:       op,
	}
}

func containsValue(vs []*Value, v *Value) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

// Data returns the scalar held by this node.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the scalar held by this node.
//
// Intended for leaf parameters between training steps. Changing the data of an
// interior node does not recompute its descendants.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient ∂output/∂v of the last backward pass.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad overwrites the accumulated gradient.
func (v *Value) SetGrad(grad float64) {
	v.grad = grad
}

// ZeroGrad resets the gradient of this node only.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Parents returns the distinct operands this node was computed from.
// Leaves return an empty slice. The slice must not be modified.
func (v *Value) Parents() []*Value {
	return v.parents
}

// Op returns the tag of the operation that produced this node.
func (v *Value) Op() Op {
	return v.op
}

// IsLeaf reports whether the node has no parents.
func (v *Value) IsLeaf() bool {
	return len(v.parents) == 0
}

// Label returns a human-readable label of the producing operation,
// e.g. "+", "*", "**2" or "ReLU". Leaves have an empty label.
func (v *Value) Label() string {
	if v.op == OpPow {
		return fmt.Sprintf("**%g", v.exponent)
	}
	return v.op.String()
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%s, prev=%d)", v.data, v.grad, v.Label(), len(v.parents))
}
