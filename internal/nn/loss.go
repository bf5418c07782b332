package nn

import (
	"fmt"

	"github.com/gograd-ml/gograd/internal/engine"
)

// MSELoss computes the mean squared error between predictions and
// targets: mean((predᵢ - targetᵢ)²).
//
// The result is a graph node, so Backward on it propagates into every
// prediction (and through them into the model parameters).
//
// Panics on empty or mismatched inputs.
func MSELoss(pred, target []*engine.Value) *engine.Value {
	if len(pred) == 0 || len(pred) != len(target) {
		panic(fmt.Sprintf("nn: MSELoss expects matching non-empty slices, got %d and %d", len(pred), len(target)))
	}

	sum := pred[0].Sub(target[0]).Pow(2)
	for i := 1; i < len(pred); i++ {
		sum = sum.Add(pred[i].Sub(target[i]).Pow(2))
	}
	return sum.DivScalar(float64(len(pred)))
}

// HingeLoss computes the max-margin loss for binary classification with
// ±1 labels: mean(relu(1 - yᵢ·scoreᵢ)).
//
// A sample contributes zero once its score clears the margin on the
// correct side.
//
// Panics on empty or mismatched inputs, or labels outside {-1, +1}.
func HingeLoss(scores []*engine.Value, labels []float64) *engine.Value {
	if len(scores) == 0 || len(scores) != len(labels) {
		panic(fmt.Sprintf("nn: HingeLoss expects matching non-empty slices, got %d and %d", len(scores), len(labels)))
	}

	var sum *engine.Value
	for i, s := range scores {
		y := labels[i]
		if y != 1 && y != -1 {
			panic(fmt.Sprintf("nn: HingeLoss labels must be ±1, got %g at index %d", y, i))
		}
		margin := s.MulScalar(-y).AddScalar(1).ReLU()
		if sum == nil {
			sum = margin
		} else {
			sum = sum.Add(margin)
		}
	}
	return sum.DivScalar(float64(len(scores)))
}

// L2Penalty computes alpha * Σ pᵢ², the standard weight-decay term to
// add onto a data loss.
func L2Penalty(params []*engine.Value, alpha float64) *engine.Value {
	if len(params) == 0 {
		return engine.Const(0)
	}

	sum := params[0].Mul(params[0])
	for _, p := range params[1:] {
		sum = sum.Add(p.Mul(p))
	}
	return sum.MulScalar(alpha)
}
