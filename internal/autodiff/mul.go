package autodiff

// Mul returns a new node for v * other.
func (v *Value) Mul(other *Value) *Value {
	return newNode(v.data*other.data, OpMul, v, other)
}

// mulBackward: each operand receives the other operand's data times the
// output gradient. For x*x both operands are the same node, so x receives
// 2x times the output gradient.
func mulBackward(out *Value, grads gradients) {
	a, b := out.operands[0], out.operands[1]
	grads[a] += b.data * grads[out]
	grads[b] += a.data * grads[out]
}
