// Package optim implements parameter optimization for training networks
// built on the scalar autodiff engine.
//
// Only plain gradient descent is provided: the engine is scalar-only and
// pedagogical, so there is no momentum, no adaptive learning rate, and no
// batching beyond the caller's full-dataset loss.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := 0; step < steps; step++ {
//	    loss := buildLoss(model, data)
//	    optimizer.ZeroGrad()
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for optimization algorithms.
//
// Gradients live on the parameter nodes themselves (accumulated there by
// autodiff.Backward), so Step takes no arguments.
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad clears every parameter's gradient accumulator. Must be
	// called before each backward pass; Backward checks this precondition.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration shared by optimizers.
type Config struct {
	LR float64 // Learning rate
}
