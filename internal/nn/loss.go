package nn

import (
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Panics if the slices differ in length or are empty.
func MSELoss(predictions, targets []*autodiff.Value) *autodiff.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("nn: MSELoss got %d predictions and %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("nn: MSELoss of empty batch")
	}

	terms := make([]*autodiff.Value, len(predictions))
	for i := range predictions {
		diff := predictions[i].Sub(targets[i])
		terms[i] = diff.Mul(diff)
	}
	return autodiff.Mean(terms...)
}

// HingeLoss computes the max-margin (SVM) loss for labels in {-1, +1}.
//
// Loss = mean(max(0, 1 - yᵢ·sᵢ))
//
// A score with the right sign and a margin of at least 1 contributes nothing.
// Panics if the slices differ in length or are empty.
func HingeLoss(scores []*autodiff.Value, labels []float64) *autodiff.Value {
	if len(scores) != len(labels) {
		panic(fmt.Sprintf("nn: HingeLoss got %d scores and %d labels", len(scores), len(labels)))
	}
	if len(scores) == 0 {
		panic("nn: HingeLoss of empty batch")
	}

	terms := make([]*autodiff.Value, len(scores))
	for i, s := range scores {
		terms[i] = s.MulScalar(-labels[i]).AddScalar(1).ReLU()
	}
	return autodiff.Sum(terms...).MulScalar(1 / float64(len(terms)))
}

// L2Penalty returns alpha · Σ p² over params.
func L2Penalty(params []*autodiff.Value, alpha float64) *autodiff.Value {
	squares := make([]*autodiff.Value, len(params))
	for i, p := range params {
		squares[i] = p.Mul(p)
	}
	return autodiff.Sum(squares...).MulScalar(alpha)
}
