package autodiff

// ReLU returns a new node for max(0, v).
//
// The derivative at exactly 0 is taken to be 0. This is a sub-gradient
// convention; any value in [0, 1] would be valid.
func (v *Value) ReLU() *Value {
	data := v.data
	if data < 0 {
		data = 0
	}
	return newNode(data, OpReLU, v)
}

// reluBackward passes the gradient through only where the output is positive.
func reluBackward(out *Value, grads gradients) {
	if out.data > 0 {
		grads[out.operands[0]] += grads[out]
	}
}
