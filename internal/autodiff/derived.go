package autodiff

// Operations below are compositions of Add, Mul and Pow. They introduce no
// backward rules of their own.

// Neg returns -v, computed as v * -1.
func (v *Value) Neg() *Value {
	return v.Mul(New(-1))
}

// Sub returns v - other, computed as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Div returns v / other, computed as v * other^-1.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// AddScalar returns v + s with s lifted to a fresh leaf.
func (v *Value) AddScalar(s float64) *Value {
	return v.Add(New(s))
}

// SubScalar returns v - s with -s lifted to a fresh leaf.
func (v *Value) SubScalar(s float64) *Value {
	return v.Add(New(-s))
}

// MulScalar returns v * s with s lifted to a fresh leaf.
func (v *Value) MulScalar(s float64) *Value {
	return v.Mul(New(s))
}

// DivScalar returns v / s with 1/s lifted to a fresh leaf.
func (v *Value) DivScalar(s float64) *Value {
	return v.Mul(New(1 / s))
}

// Sum adds values left to right. An empty sum is a zero leaf.
func Sum(values ...*Value) *Value {
	if len(values) == 0 {
		return New(0)
	}
	out := values[0]
	for _, v := range values[1:] {
		out = out.Add(v)
	}
	return out
}

// Mean returns Sum(values) scaled by 1/len(values). An empty mean is a zero leaf.
func Mean(values ...*Value) *Value {
	if len(values) == 0 {
		return New(0)
	}
	return Sum(values...).MulScalar(1 / float64(len(values)))
}
