package autodiff_test

import (
	"testing"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBackward_SharedOperandAdd tests y = x + x (x used twice).
func TestBackward_SharedOperandAdd(t *testing.T) {
	x := autodiff.New(5)
	y := x.Add(x)

	y.Backward()

	assert.Equal(t, 10.0, y.Data())
	assert.Equal(t, 1.0, y.Grad())
	assert.Equal(t, 2.0, x.Grad())
}

// TestBackward_ProductRule tests z = a * b.
func TestBackward_ProductRule(t *testing.T) {
	a := autodiff.New(3)
	b := autodiff.New(4)
	z := a.Mul(b)

	z.Backward()

	assert.Equal(t, 12.0, z.Data())
	assert.Equal(t, b.Data(), a.Grad())
	assert.Equal(t, a.Data(), b.Grad())
}

// TestBackward_ChainRule tests w = (a*b + c)^2 against manual calculus.
func TestBackward_ChainRule(t *testing.T) {
	a := autodiff.New(2)
	b := autodiff.New(3)
	c := autodiff.New(1)
	w := a.Mul(b).Add(c).Pow(2)

	w.Backward()

	inner := a.Data()*b.Data() + c.Data() // 7
	assert.InDelta(t, 49.0, w.Data(), 1e-12)
	assert.InDelta(t, 2*inner*b.Data(), a.Grad(), 1e-12) // 42
	assert.InDelta(t, 2*inner*a.Data(), b.Grad(), 1e-12) // 28
	assert.InDelta(t, 2*inner, c.Grad(), 1e-12)          // 14
}

// TestBackward_ReLUBoundary tests ReLU on both sides of zero and at zero.
func TestBackward_ReLUBoundary(t *testing.T) {
	tests := []struct {
		in       float64
		wantData float64
		wantGrad float64
	}{
		{-5, 0, 0},
		{5, 5, 1},
		{0, 0, 0}, // sub-gradient convention
		{1e-9, 1e-9, 1},
	}
	for _, tt := range tests {
		x := autodiff.New(tt.in)
		y := x.ReLU()
		y.Backward()

		assert.Equal(t, tt.wantData, y.Data(), "relu(%g)", tt.in)
		assert.Equal(t, tt.wantGrad, x.Grad(), "d relu(%g)", tt.in)
	}
}

// TestBackward_Diamond tests p = x*x, q = p + x: both paths must contribute.
func TestBackward_Diamond(t *testing.T) {
	for _, xv := range []float64{-3, -0.5, 0, 1, 2.5, 10} {
		x := autodiff.New(xv)
		p := x.Mul(x)
		q := p.Add(x)

		q.Backward()

		assert.InDelta(t, 2*xv+1, x.Grad(), 1e-12, "x = %g", xv)
		assert.Equal(t, 1.0, p.Grad())
	}
}

// TestBackward_ResetReproduces tests that zeroing gradients makes Backward deterministic.
func TestBackward_ResetReproduces(t *testing.T) {
	a := autodiff.New(2)
	b := autodiff.New(3)
	c := autodiff.New(1)
	w := a.Mul(b).Add(c).Pow(2)

	w.Backward()
	first := gradsOf(w.Topo())

	w.ZeroGrads()
	for _, n := range w.Topo() {
		require.Equal(t, 0.0, n.Grad())
	}

	w.Backward()
	assert.Equal(t, first, gradsOf(w.Topo()))
}

// TestBackward_NoResetDoubles tests documented accumulation without reset.
func TestBackward_NoResetDoubles(t *testing.T) {
	a := autodiff.New(2)
	b := autodiff.New(3)
	c := autodiff.New(1)
	w := a.Mul(b).Add(c).Pow(2)

	w.Backward()
	first := gradsOf(w.Topo())

	w.Backward()
	second := gradsOf(w.Topo())

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, 2*first[i], second[i], "node %d", i)
	}
}

// TestBackward_ExternalGradientPreserved tests that Backward adds to existing gradients.
func TestBackward_ExternalGradientPreserved(t *testing.T) {
	x := autodiff.New(3)
	x.SetGrad(10)
	y := x.MulScalar(2)

	y.Backward()

	assert.Equal(t, 12.0, x.Grad())
}

// TestBackward_LeafOnly tests Backward on a lone leaf.
func TestBackward_LeafOnly(t *testing.T) {
	x := autodiff.New(7)
	x.Backward()
	assert.Equal(t, 1.0, x.Grad())
}

// TestBackward_Subgraph tests that Backward only touches ancestors of the root.
func TestBackward_Subgraph(t *testing.T) {
	x := autodiff.New(2)
	y := x.MulScalar(3)
	unrelated := x.AddScalar(1)

	y.Backward()

	assert.Equal(t, 3.0, x.Grad())
	assert.Equal(t, 0.0, unrelated.Grad())
}

// TestBackward_Division tests a/b gradients through pow(-1).
func TestBackward_Division(t *testing.T) {
	a := autodiff.New(6)
	b := autodiff.New(3)
	z := a.Div(b)

	z.Backward()

	assert.InDelta(t, 1/3.0, a.Grad(), 1e-12)
	assert.InDelta(t, -6/9.0, b.Grad(), 1e-12)
}

// TestBackward_Subtraction tests a-b gradients through neg.
func TestBackward_Subtraction(t *testing.T) {
	a := autodiff.New(6)
	b := autodiff.New(3)
	z := a.Sub(b)

	z.Backward()

	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, -1.0, b.Grad())
}

// TestBackward_DeepChain tests a long chain of shared additions.
func TestBackward_DeepChain(t *testing.T) {
	x := autodiff.New(1)
	y := x
	const n = 10000
	for range n {
		y = y.Add(x)
	}

	y.Backward()

	assert.Equal(t, float64(n+1), y.Data())
	assert.Equal(t, float64(n+1), x.Grad())
}

// TestBackward_WideFanIn tests a node reused by many consumers.
func TestBackward_WideFanIn(t *testing.T) {
	x := autodiff.New(2)
	terms := make([]*autodiff.Value, 50)
	for i := range terms {
		terms[i] = x.Mul(x) // each contributes 2x
	}
	y := autodiff.Sum(terms...)

	y.Backward()

	assert.Equal(t, 200.0, y.Data())
	assert.Equal(t, 50*2*2.0, x.Grad())
}

// TestTopo_Order tests that every node comes after its parents and the root is last.
func TestTopo_Order(t *testing.T) {
	x := autodiff.New(2)
	p := x.Mul(x)
	q := p.Add(x)
	r := q.Mul(p).ReLU()

	topo := r.Topo()

	pos := make(map[*autodiff.Value]int, len(topo))
	for i, n := range topo {
		_, dup := pos[n]
		require.False(t, dup, "node listed twice")
		pos[n] = i
	}
	assert.Len(t, topo, 5)
	assert.Same(t, r, topo[len(topo)-1])
	for _, n := range topo {
		for _, parent := range n.Parents() {
			assert.Less(t, pos[parent], pos[n])
		}
	}
}

func gradsOf(nodes []*autodiff.Value) []float64 {
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = n.Grad()
	}
	return out
}
