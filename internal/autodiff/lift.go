package autodiff

import "github.com/pkg/errors"

// Lift converts an operand to a node.
//
// A *Value is returned as is. Any Go integer or floating-point number becomes
// a fresh leaf whose gradient is never read by the caller. Anything else,
// including a nil *Value, fails with ErrTypeMismatch.
func Lift(x any) (*Value, error) {
	if v, ok := x.(*Value); ok {
		if v == nil {
			return nil, errors.Wrap(ErrTypeMismatch, "nil *Value")
		}
		return v, nil
	}
	f, ok := toFloat(x)
	if !ok {
		return nil, errors.Wrapf(ErrTypeMismatch, "operand of type %T", x)
	}
	return New(f), nil
}

func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func liftPair(a, b any) (*Value, *Value, error) {
	va, err := Lift(a)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "left operand")
	}
	vb, err := Lift(b)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "right operand")
	}
	return va, vb, nil
}

// Add returns a + b for any mix of *Value and number operands.
func Add(a, b any) (*Value, error) {
	va, vb, err := liftPair(a, b)
	if err != nil {
		return nil, errors.WithMessage(err, "add")
	}
	return va.Add(vb), nil
}

// Mul returns a * b for any mix of *Value and number operands.
func Mul(a, b any) (*Value, error) {
	va, vb, err := liftPair(a, b)
	if err != nil {
		return nil, errors.WithMessage(err, "mul")
	}
	return va.Mul(vb), nil
}

// Sub returns a - b. With a number on the left this is the reflected form
// a + (-b).
func Sub(a, b any) (*Value, error) {
	va, vb, err := liftPair(a, b)
	if err != nil {
		return nil, errors.WithMessage(err, "sub")
	}
	return va.Sub(vb), nil
}

// Div returns a / b. With a number on the left this is the reflected form
// a * b^-1.
func Div(a, b any) (*Value, error) {
	va, vb, err := liftPair(a, b)
	if err != nil {
		return nil, errors.WithMessage(err, "div")
	}
	return va.Div(vb), nil
}

// Pow returns base^exp. The exponent must be a plain number; a *Value
// exponent fails with ErrUnsupportedExponent.
func Pow(base, exp any) (*Value, error) {
	if _, ok := exp.(*Value); ok {
		return nil, errors.Wrap(ErrUnsupportedExponent, "pow")
	}
	p, ok := toFloat(exp)
	if !ok {
		return nil, errors.Wrapf(ErrTypeMismatch, "pow: exponent of type %T", exp)
	}
	vb, err := Lift(base)
	if err != nil {
		return nil, errors.WithMessage(err, "pow")
	}
	return vb.Pow(p), nil
}

// Neg returns -x.
func Neg(x any) (*Value, error) {
	v, err := Lift(x)
	if err != nil {
		return nil, errors.WithMessage(err, "neg")
	}
	return v.Neg(), nil
}

// ReLU returns max(0, x).
func ReLU(x any) (*Value, error) {
	v, err := Lift(x)
	if err != nil {
		return nil, errors.WithMessage(err, "relu")
	}
	return v.ReLU(), nil
}
