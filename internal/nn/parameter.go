package nn

import "github.com/pkg/errors"

// Snapshot copies the data of every parameter of m, in Parameters order.
func Snapshot(m Module) []float64 {
	params := m.Parameters()
	data := make([]float64, len(params))
	for i, p := range params {
		data[i] = p.Data()
	}
	return data
}

// Restore writes data back into the parameters of m.
//
// Returns ErrParameterCount if len(data) differs from the number of
// parameters; m is left untouched in that case.
func Restore(m Module, data []float64) error {
	params := m.Parameters()
	if len(params) != len(data) {
		return errors.Wrapf(ErrParameterCount, "have %d parameters, got %d values", len(params), len(data))
	}
	for i, p := range params {
		p.SetData(data[i])
	}
	return nil
}

// Grads copies the gradient of every parameter of m, in Parameters order.
func Grads(m Module) []float64 {
	params := m.Parameters()
	g := make([]float64, len(params))
	for i, p := range params {
		g[i] = p.Grad()
	}
	return g
}
