package optim

import (
	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params   []*autodiff.Value
	lr       float64
	momentum float64
	velocity []float64 // Allocated on the first step with momentum

	buf, gbuf []float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	s.buf = data(s.params, s.buf)
	s.gbuf = grads(s.params, s.gbuf)

	if s.momentum == 0 {
		// param -= lr * grad
		floats.AddScaled(s.buf, -s.lr, s.gbuf)
	} else {
		if s.velocity == nil {
			s.velocity = make([]float64, len(s.params))
		}
		// velocity = momentum * velocity + grad
		floats.Scale(s.momentum, s.velocity)
		floats.Add(s.velocity, s.gbuf)
		// param -= lr * velocity
		floats.AddScaled(s.buf, -s.lr, s.velocity)
	}

	setData(s.params, s.buf)
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the optimizer state for checkpointing.
//
// With momentum, "velocity" holds one entry per parameter once the first
// step has run. Without momentum the state is empty.
func (s *SGD) StateDict() map[string][]float64 {
	state := make(map[string][]float64)
	if s.momentum == 0 || s.velocity == nil {
		return state
	}
	state["velocity"] = append([]float64(nil), s.velocity...)
	return state
}

// LoadStateDict restores state produced by StateDict.
//
// Returns ErrStateSize if the velocity length does not match the number
// of parameters.
func (s *SGD) LoadStateDict(state map[string][]float64) error {
	if s.momentum == 0 {
		return nil
	}

	v, ok := state["velocity"]
	if !ok {
		s.velocity = nil
		return nil
	}
	if len(v) != len(s.params) {
		return errors.Wrapf(ErrStateSize, "velocity: expected %d, got %d", len(s.params), len(v))
	}
	s.velocity = append([]float64(nil), v...)
	return nil
}
