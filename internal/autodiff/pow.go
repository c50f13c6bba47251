package autodiff

import "math"

// Pow returns a new node for v raised to a constant exponent.
//
// The exponent is not part of the graph. Use the package-level Pow to get an
// error instead of a compile failure when the exponent may be a *Value.
func (v *Value) Pow(exponent float64) *Value {
	out := newNode(math.Pow(v.data, exponent), OpPow, v)
	out.exponent = exponent
	return out
}

// powBackward: d(a^p)/da = p * a^(p-1).
func powBackward(out *Value, grads gradients) {
	a := out.operands[0]
	p := out.exponent
	grads[a] += p * math.Pow(a.data, p-1) * grads[out]
}
