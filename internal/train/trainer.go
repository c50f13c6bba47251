// Package train runs the classification training loop: forward, loss,
// backward, step.
package train

import (
	"math/rand"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/optim"
)

// Config holds the training loop configuration.
type Config struct {
	Steps     int     // Number of optimization steps (default: 100)
	LR        float64 // Learning rate at step 0 (default: 1.0)
	FinalLR   float64 // Learning rate reached at the last step (default: 0.1)
	Alpha     float64 // L2 penalty coefficient (default: 1e-4)
	BatchSize int     // Samples per step; 0 or >= dataset size means full batch
	Seed      int64   // Seed for batch sampling
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Steps == 0 {
		c.Steps = 100
	}
	if c.LR == 0 {
		c.LR = 1.0
	}
	if c.FinalLR == 0 {
		c.FinalLR = 0.1
	}
	if c.Alpha == 0 {
		c.Alpha = 1e-4
	}
	return c
}

// StepStats reports one optimization step.
type StepStats struct {
	Step     int
	Loss     float64 // Hinge loss plus L2 penalty on the batch, before the update
	Accuracy float64 // Batch accuracy, before the update
	LR       float64 // Learning rate used for the update
}

// Trainer fits an MLP to ±1 labels with hinge loss and SGD.
type Trainer struct {
	Model     *nn.MLP
	Optimizer *optim.SGD
	Config    Config

	rng *rand.Rand
}

// NewTrainer creates a trainer with an SGD optimizer over the model parameters.
func NewTrainer(model *nn.MLP, config Config) *Trainer {
	config = config.withDefaults()
	return &Trainer{
		Model:     model,
		Optimizer: optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: config.LR}),
		Config:    config,
		rng:       rand.New(rand.NewSource(config.Seed)), //nolint:gosec // batch sampling only
	}
}

// Loss builds the loss graph for (xs, ys) and returns it with the batch accuracy.
//
// Loss = mean(max(0, 1 - yᵢ·scoreᵢ)) + alpha · Σ p²
func (t *Trainer) Loss(xs [][]float64, ys []float64) (*autodiff.Value, float64) {
	scores := make([]*autodiff.Value, len(xs))
	raw := make([]float64, len(xs))
	for i, x := range xs {
		scores[i] = t.Model.Predict(x)[0]
		raw[i] = scores[i].Data()
	}

	dataLoss := nn.HingeLoss(scores, ys)
	regLoss := nn.L2Penalty(t.Model.Parameters(), t.Config.Alpha)
	return dataLoss.Add(regLoss), nn.Accuracy(raw, ys)
}

// Step runs optimization step k: zero grads, forward, backward, update.
func (t *Trainer) Step(k int, xs [][]float64, ys []float64) StepStats {
	bx, by := t.batch(xs, ys)

	t.Optimizer.ZeroGrad()
	loss, acc := t.Loss(bx, by)
	loss.Backward()

	lr := optim.LinearDecay(t.Config.LR, t.Config.FinalLR, k, t.Config.Steps)
	t.Optimizer.SetLR(lr)
	t.Optimizer.Step()

	return StepStats{Step: k, Loss: loss.Data(), Accuracy: acc, LR: lr}
}

// Fit runs Config.Steps steps and returns their statistics.
// report, if not nil, is called after every step.
func (t *Trainer) Fit(xs [][]float64, ys []float64, report func(StepStats)) []StepStats {
	stats := make([]StepStats, 0, t.Config.Steps)
	for k := range t.Config.Steps {
		s := t.Step(k, xs, ys)
		stats = append(stats, s)
		if report != nil {
			report(s)
		}
	}
	return stats
}

// batch samples BatchSize rows without replacement, or returns everything.
func (t *Trainer) batch(xs [][]float64, ys []float64) ([][]float64, []float64) {
	n := t.Config.BatchSize
	if n <= 0 || n >= len(xs) {
		return xs, ys
	}
	idx := t.rng.Perm(len(xs))[:n]
	bx := make([][]float64, n)
	by := make([]float64, n)
	for i, j := range idx {
		bx[i], by[i] = xs[j], ys[j]
	}
	return bx, by
}
