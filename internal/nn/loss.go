package nn

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/scalar"
)

// SSELoss computes the sum-of-squared-errors regression loss:
//
//	loss = Σ_i (prediction_i - target_i)²
//
// The loss is itself a graph node, so autodiff.Backward on it propagates
// gradients through every prediction back to the model parameters.
//
// Example:
//
//	sse := nn.SSELoss{}
//	preds := []*scalar.Value{model.ForwardScalar(x1), model.ForwardScalar(x2)}
//	loss := sse.Forward(preds, []float64{1.0, -1.0})
type SSELoss struct{}

// Forward builds the loss node over matched prediction/target pairs.
//
// Targets are plain numbers; they enter the graph as constant leaves, so no
// gradient flows into them. Panics if the lengths differ.
func (SSELoss) Forward(predictions []*scalar.Value, targets []float64) *scalar.Value {
	if len(predictions) != len(targets) {
		panic("nn.SSELoss: predictions and targets must have the same length")
	}

	loss := scalar.New(0)
	for i, pred := range predictions {
		diff := autodiff.Sub(autodiff.Node(pred), autodiff.Lit(targets[i]))
		loss = autodiff.Add(autodiff.Node(loss), autodiff.Node(autodiff.Pow(autodiff.Node(diff), 2)))
	}

	return loss
}
