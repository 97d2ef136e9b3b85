// Package train implements the full-dataset gradient-descent training loop
// for MLPs built on the scalar autodiff engine.
//
// Each step: evaluate the network on every sample, build the
// sum-of-squared-errors loss graph, zero the parameter gradients, run the
// backward pass, and apply one SGD update. No batching, no momentum.
package train

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/optim"
	"github.com/ember-ml/ember/internal/scalar"
)

// Sample is one training example: an input vector and a scalar target.
type Sample struct {
	Inputs []float64
	Target float64
}

// Config controls a training run.
type Config struct {
	LR    float64 // Learning rate (default: 0.01)
	Steps int     // Number of gradient-descent steps (default: 100)

	// OnStep, when set, is invoked after each update with the step index
	// and the loss of the graph built during that step.
	OnStep func(step int, loss float64)
}

// Fit trains the model on the dataset and returns the per-step loss history
// (history[0] is the loss before any update, history[i] the loss after i
// updates), so callers can assert or plot convergence.
func Fit(model *nn.MLP, data []Sample, cfg Config) []float64 {
	if len(data) == 0 {
		panic("train.Fit: empty dataset")
	}
	for i, s := range data {
		if len(s.Inputs) != model.In() {
			panic(fmt.Sprintf("train.Fit: sample %d has %d inputs, model expects %d", i, len(s.Inputs), model.In()))
		}
	}
	if cfg.LR == 0 {
		cfg.LR = 0.01
	}
	if cfg.Steps == 0 {
		cfg.Steps = 100
	}

	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.LR})
	loss := nn.SSELoss{}
	history := make([]float64, 0, cfg.Steps+1)

	for step := 0; step < cfg.Steps; step++ {
		// Forward: a fresh graph per step over the shared parameter leaves.
		targets := make([]float64, len(data))
		preds := make([]*scalar.Value, len(data))
		for i, s := range data {
			preds[i] = model.ForwardScalar(scalar.FromSlice(s.Inputs))
			targets[i] = s.Target
		}
		total := loss.Forward(preds, targets)

		if step == 0 {
			history = append(history, total.Data())
		}

		optimizer.ZeroGrad()
		autodiff.Backward(total)
		optimizer.Step()

		if cfg.OnStep != nil {
			cfg.OnStep(step, total.Data())
		}

		// Record the post-update loss without perturbing the graph: re-run
		// the forward pass and sum the per-example squared errors directly.
		history = append(history, Evaluate(model, data))
	}

	return history
}

// Evaluate returns the current sum-of-squared-errors loss of the model on
// the dataset, without building gradient state.
func Evaluate(model *nn.MLP, data []Sample) float64 {
	errs := make([]float64, len(data))
	for i, s := range data {
		pred := model.ForwardScalar(scalar.FromSlice(s.Inputs))
		diff := pred.Data() - s.Target
		errs[i] = diff * diff
	}
	return floats.Sum(errs)
}
