package autodiff

// Add returns a new node for v + other.
func (v *Value) Add(other *Value) *Value {
	return newNode(v.data+other.data, OpAdd, v, other)
}

// addBackward: the gradient flows unchanged to both operands.
func addBackward(out *Value, grads gradients) {
	a, b := out.operands[0], out.operands[1]
	grads[a] += grads[out]
	grads[b] += grads[out]
}
