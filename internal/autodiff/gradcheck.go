package autodiff

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
)

// Function builds a scalar graph from its leaf inputs.
type Function func(x []*Value) *Value

// GradCheckConfig configures GradCheck.
type GradCheckConfig struct {
	Step      float64 // Finite-difference step (default: 1e-6)
	Tolerance float64 // Maximum allowed absolute difference (default: 1e-4)
}

// GradCheckResult holds both gradients compared by GradCheck.
type GradCheckResult struct {
	Value       float64   // f(at)
	Analytic    []float64 // Gradient from Backward
	Numerical   []float64 // Central finite-difference gradient
	MaxAbsError float64   // max_i |Analytic[i] - Numerical[i]|
}

// GradCheck compares the gradient computed by Backward with a central
// finite-difference estimate of f at the point at.
//
// f is evaluated on fresh leaves for every probe, so it must build its graph
// only from the given inputs. Points where f is not differentiable (for
// example a ReLU input of exactly 0) produce spurious mismatches.
//
// Returns ErrGradientMismatch when MaxAbsError exceeds the tolerance. The
// result is filled in either way.
func GradCheck(f Function, at []float64, config GradCheckConfig) (GradCheckResult, error) {
	if config.Step == 0 {
		config.Step = 1e-6
	}
	if config.Tolerance == 0 {
		config.Tolerance = 1e-4
	}

	inputs := leaves(at)
	out := f(inputs)
	out.Backward()

	analytic := make([]float64, len(inputs))
	for i, in := range inputs {
		analytic[i] = in.Grad()
	}

	numerical := fd.Gradient(nil, func(x []float64) float64 {
		return f(leaves(x)).Data()
	}, at, &fd.Settings{
		Formula: fd.Central,
		Step:    config.Step,
	})

	result := GradCheckResult{
		Value:     out.Data(),
		Analytic:  analytic,
		Numerical: numerical,
	}

	worst := -1
	for i := range analytic {
		diff := math.Abs(analytic[i] - numerical[i])
		if diff > result.MaxAbsError || math.IsNaN(diff) {
			result.MaxAbsError = diff
			worst = i
		}
	}

	if worst >= 0 && !(result.MaxAbsError <= config.Tolerance) {
		return result, errors.Wrapf(ErrGradientMismatch,
			"input %d: analytic %g, numerical %g (tolerance %g)",
			worst, analytic[worst], numerical[worst], config.Tolerance)
	}
	return result, nil
}

func leaves(data []float64) []*Value {
	vs := make([]*Value, len(data))
	for i, d := range data {
		vs[i] = New(d)
	}
	return vs
}
