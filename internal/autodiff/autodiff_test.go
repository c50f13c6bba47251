package autodiff_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Leaf tests leaf construction.
func TestNew_Leaf(t *testing.T) {
	x := autodiff.New(2.5)

	assert.Equal(t, 2.5, x.Data())
	assert.Equal(t, 0.0, x.Grad())
	assert.Empty(t, x.Parents())
	assert.True(t, x.IsLeaf())
	assert.Equal(t, autodiff.OpLeaf, x.Op())
	assert.Equal(t, "", x.Label())
}

// TestValue_Accessors tests direct read/write of data and gradient.
func TestValue_Accessors(t *testing.T) {
	x := autodiff.New(1)
	x.SetData(4)
	x.SetGrad(0.5)
	assert.Equal(t, 4.0, x.Data())
	assert.Equal(t, 0.5, x.Grad())

	x.ZeroGrad()
	assert.Equal(t, 0.0, x.Grad())
}

// TestValue_ForwardValues tests the data computed by each primitive.
func TestValue_ForwardValues(t *testing.T) {
	a := autodiff.New(3)
	b := autodiff.New(-2)

	tests := []struct {
		name  string
		got   *autodiff.Value
		want  float64
		op    autodiff.Op
		label string
	}{
		{"add", a.Add(b), 1, autodiff.OpAdd, "+"},
		{"mul", a.Mul(b), -6, autodiff.OpMul, "*"},
		{"pow", a.Pow(2), 9, autodiff.OpPow, "**2"},
		{"pow negative", a.Pow(-1), 1.0 / 3, autodiff.OpPow, "**-1"},
		{"pow fractional", autodiff.New(4).Pow(0.5), 2, autodiff.OpPow, "**0.5"},
		{"relu positive", a.ReLU(), 3, autodiff.OpReLU, "ReLU"},
		{"relu negative", b.ReLU(), 0, autodiff.OpReLU, "ReLU"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got.Data(), 1e-12)
			assert.Equal(t, tt.op, tt.got.Op())
			assert.Equal(t, tt.label, tt.got.Label())
			assert.Equal(t, 0.0, tt.got.Grad())
		})
	}
}

// TestValue_ParentsDeduplicated tests that an operand used twice is recorded once.
func TestValue_ParentsDeduplicated(t *testing.T) {
	x := autodiff.New(3)
	y := autodiff.New(4)

	sq := x.Mul(x)
	require.Len(t, sq.Parents(), 1)
	assert.Same(t, x, sq.Parents()[0])

	dbl := x.Add(x)
	require.Len(t, dbl.Parents(), 1)

	prod := x.Mul(y)
	require.Len(t, prod.Parents(), 2)
	assert.Same(t, x, prod.Parents()[0])
	assert.Same(t, y, prod.Parents()[1])

	// Equal data is not identity.
	z := autodiff.New(3)
	assert.Len(t, x.Add(z).Parents(), 2)
}

// TestValue_DerivedOps tests that derived ops compute the right values and
// are built only from primitives.
func TestValue_DerivedOps(t *testing.T) {
	a := autodiff.New(6)
	b := autodiff.New(3)

	neg := a.Neg()
	assert.Equal(t, -6.0, neg.Data())
	assert.Equal(t, autodiff.OpMul, neg.Op())

	sub := a.Sub(b)
	assert.Equal(t, 3.0, sub.Data())
	assert.Equal(t, autodiff.OpAdd, sub.Op())

	div := a.Div(b)
	assert.InDelta(t, 2.0, div.Data(), 1e-12)
	assert.Equal(t, autodiff.OpMul, div.Op())

	assert.Equal(t, 8.0, a.AddScalar(2).Data())
	assert.Equal(t, 4.0, a.SubScalar(2).Data())
	assert.Equal(t, 12.0, a.MulScalar(2).Data())
	assert.Equal(t, 3.0, a.DivScalar(2).Data())

	for _, v := range []*autodiff.Value{neg, sub, div} {
		for _, node := range v.Topo() {
			assert.Contains(t,
				[]autodiff.Op{autodiff.OpLeaf, autodiff.OpAdd, autodiff.OpMul, autodiff.OpPow, autodiff.OpReLU},
				node.Op())
		}
	}
}

// TestSum_And_Mean tests the n-ary helpers.
func TestSum_And_Mean(t *testing.T) {
	xs := []*autodiff.Value{autodiff.New(1), autodiff.New(2), autodiff.New(3)}

	assert.Equal(t, 6.0, autodiff.Sum(xs...).Data())
	assert.InDelta(t, 2.0, autodiff.Mean(xs...).Data(), 1e-12)
	assert.Equal(t, 0.0, autodiff.Sum().Data())
	assert.Equal(t, 0.0, autodiff.Mean().Data())
	assert.Same(t, xs[0], autodiff.Sum(xs[0]))
}

// TestLift tests numeric promotion.
func TestLift(t *testing.T) {
	x := autodiff.New(1)

	v, err := autodiff.Lift(x)
	require.NoError(t, err)
	assert.Same(t, x, v)

	for _, n := range []any{2, int8(2), int64(2), uint(2), uint32(2), float32(2), 2.0} {
		v, err := autodiff.Lift(n)
		require.NoError(t, err, "%T", n)
		assert.Equal(t, 2.0, v.Data())
		assert.True(t, v.IsLeaf())
	}
}

// TestLift_TypeMismatch tests that non-numeric operands are rejected.
func TestLift_TypeMismatch(t *testing.T) {
	for _, bad := range []any{"2", nil, struct{}{}, []float64{1}, (*autodiff.Value)(nil)} {
		_, err := autodiff.Lift(bad)
		require.Error(t, err, "%T", bad)
		assert.True(t, errors.Is(err, autodiff.ErrTypeMismatch), "%v", err)
	}
}

// TestMixedOperands tests the package-level functions with numbers on either side.
func TestMixedOperands(t *testing.T) {
	x := autodiff.New(4)

	tests := []struct {
		name string
		fn   func() (*autodiff.Value, error)
		want float64
	}{
		{"value + number", func() (*autodiff.Value, error) { return autodiff.Add(x, 1) }, 5},
		{"number + value", func() (*autodiff.Value, error) { return autodiff.Add(1, x) }, 5},
		{"number * value", func() (*autodiff.Value, error) { return autodiff.Mul(3, x) }, 12},
		{"value - number", func() (*autodiff.Value, error) { return autodiff.Sub(x, 1) }, 3},
		{"number - value", func() (*autodiff.Value, error) { return autodiff.Sub(10, x) }, 6},
		{"value / number", func() (*autodiff.Value, error) { return autodiff.Div(x, 2) }, 2},
		{"number / value", func() (*autodiff.Value, error) { return autodiff.Div(2, x) }, 0.5},
		{"pow", func() (*autodiff.Value, error) { return autodiff.Pow(x, 2) }, 16},
		{"neg", func() (*autodiff.Value, error) { return autodiff.Neg(x) }, -4},
		{"relu", func() (*autodiff.Value, error) { return autodiff.ReLU(-3) }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.fn()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v.Data(), 1e-12)
		})
	}
}

// TestMixedOperands_ReflectedGradients tests gradients of number-on-the-left forms.
func TestMixedOperands_ReflectedGradients(t *testing.T) {
	x := autodiff.New(4)

	y, err := autodiff.Sub(10, x)
	require.NoError(t, err)
	y.Backward()
	assert.InDelta(t, -1.0, x.Grad(), 1e-12)

	x.ZeroGrad()
	z, err := autodiff.Div(2, x)
	require.NoError(t, err)
	z.Backward()
	// d(2/x)/dx = -2/x²
	assert.InDelta(t, -2.0/16, x.Grad(), 1e-12)
}

// TestMixedOperands_Errors tests the error taxonomy of the untyped functions.
func TestMixedOperands_Errors(t *testing.T) {
	x := autodiff.New(2)

	_, err := autodiff.Add(x, "1")
	assert.True(t, errors.Is(err, autodiff.ErrTypeMismatch))

	_, err = autodiff.Mul([]int{1}, x)
	assert.True(t, errors.Is(err, autodiff.ErrTypeMismatch))

	_, err = autodiff.Sub(x, nil)
	assert.True(t, errors.Is(err, autodiff.ErrTypeMismatch))

	_, err = autodiff.Div(true, x)
	assert.True(t, errors.Is(err, autodiff.ErrTypeMismatch))

	_, err = autodiff.Pow(x, autodiff.New(2))
	assert.True(t, errors.Is(err, autodiff.ErrUnsupportedExponent))
	assert.False(t, errors.Is(err, autodiff.ErrTypeMismatch))

	_, err = autodiff.Pow(x, "2")
	assert.True(t, errors.Is(err, autodiff.ErrTypeMismatch))

	_, err = autodiff.Pow("x", 2)
	assert.True(t, errors.Is(err, autodiff.ErrTypeMismatch))

	_, err = autodiff.ReLU("x")
	assert.True(t, errors.Is(err, autodiff.ErrTypeMismatch))
}

// TestValue_String tests the diagnostic representation.
func TestValue_String(t *testing.T) {
	x := autodiff.New(2)
	y := x.Mul(x)
	y.Backward()

	assert.Equal(t, "Value(data=4, grad=1, op=*, prev=1)", y.String())
	assert.Equal(t, "Value(data=2, grad=4, op=, prev=0)", x.String())
	assert.Equal(t, "Value(data=8, grad=0, op=**3, prev=1)", x.Pow(3).String())
}

// TestOp_String tests operation labels.
func TestOp_String(t *testing.T) {
	assert.Equal(t, "", autodiff.OpLeaf.String())
	assert.Equal(t, "+", autodiff.OpAdd.String())
	assert.Equal(t, "*", autodiff.OpMul.String())
	assert.Equal(t, "**", autodiff.OpPow.String())
	assert.Equal(t, "ReLU", autodiff.OpReLU.String())
	assert.Equal(t, "Op(?)", autodiff.Op(200).String())
}

// TestPow_NaN tests that pow follows math.Pow for out-of-domain inputs.
func TestPow_NaN(t *testing.T) {
	y := autodiff.New(-4).Pow(0.5)
	assert.True(t, math.IsNaN(y.Data()))
}
