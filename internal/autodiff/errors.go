package autodiff

import "github.com/pkg/errors"

// Errors returned by operations taking untyped operands.
var (
	ErrTypeMismatch        = errors.New("autodiff: operand is neither a *Value nor a real number")
	ErrUnsupportedExponent = errors.New("autodiff: only constant real exponents are supported")
	ErrGradientMismatch    = errors.New("autodiff: analytic and numerical gradients disagree")
)
