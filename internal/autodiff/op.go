package autodiff

// Op identifies the primitive operation that produced a Value.
//
// Every derivative in the package reduces to the rule of one of these tags:
//   - OpAdd: d(a+b)/da = 1, d(a+b)/db = 1
//   - OpMul: d(a*b)/da = b, d(a*b)/db = a
//   - OpPow: d(a^p)/da = p * a^(p-1), p constant
//   - OpReLU: d(max(0,a))/da = 1 if output > 0, else 0
type Op uint8

// Primitive operations.
const (
	OpLeaf Op = iota
	OpAdd
	OpMul
	OpPow
	OpReLU
)

var opNames = [...]string{
	OpLeaf: "",
	OpAdd:  "+",
	OpMul:  "*",
	OpPow:  "**",
	OpReLU: "ReLU",
}

// String returns the short label of the operation.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Op(?)"
}

// gradients holds the gradients of a single backward pass, keyed by node.
type gradients map[*Value]float64

// backwardRule propagates the pass gradient of out to its operands.
// Rules always add to the operand gradients, never assign.
type backwardRule func(out *Value, grads gradients)

// rules is the dispatch table used by Backward. Leaves have no rule.
var rules = [...]backwardRule{
	OpLeaf: nil,
	OpAdd:  addBackward,
	OpMul:  mulBackward,
	OpPow:  powBackward,
	OpReLU: reluBackward,
}

// propagate applies the backward rule of v to its operands.
func (v *Value) propagate(grads gradients) {
	if int(v.op) >= len(rules) {
		return
	}
	if rule := rules[v.op]; rule != nil {
		rule(v, grads)
	}
}
