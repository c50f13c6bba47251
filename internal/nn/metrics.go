package nn

import (
	"fmt"

	"github.com/born-ml/scalar/internal/parallel"
)

// Accuracy returns the fraction of scores whose sign matches the label sign.
// A score of exactly 0 counts as negative. Returns 0 for an empty batch.
func Accuracy(scores []float64, labels []float64) float64 {
	if len(scores) != len(labels) {
		panic(fmt.Sprintf("nn: Accuracy got %d scores and %d labels", len(scores), len(labels)))
	}
	if len(scores) == 0 {
		return 0
	}

	correct := 0
	for i, s := range scores {
		if (labels[i] > 0) == (s > 0) {
			correct++
		}
	}
	return float64(correct) / float64(len(scores))
}

// Scores runs a forward pass of m for every row of xs and returns the first
// output of each.
//
// Each row builds its own graph and only reads parameter data, so rows are
// evaluated concurrently according to cfg. Do not call concurrently with a
// backward pass or an optimizer step on the same model.
func Scores(m *MLP, xs [][]float64, cfg parallel.Config) []float64 {
	scores := make([]float64, len(xs))
	parallel.For(len(xs), func(i int) {
		scores[i] = m.Predict(xs[i])[0].Data()
	}, cfg)
	return scores
}

// Evaluate returns the classification accuracy of m on (xs, labels).
func Evaluate(m *MLP, xs [][]float64, labels []float64, cfg parallel.Config) float64 {
	return Accuracy(Scores(m, xs, cfg), labels)
}
