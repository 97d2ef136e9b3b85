// Package nn implements a small feed-forward network built on the scalar
// autodiff engine.
//
// Building blocks:
//   - Module interface: anything with learnable parameters
//   - Neuron: weights + bias, tanh activation
//   - Layer: a row of Neurons sharing one input vector
//   - MLP: a chain of Layers
//   - SSELoss: sum-of-squared-errors regression loss
//
// Every forward pass builds a fresh computation graph over the shared
// parameter leaves, so gradients from autodiff.Backward land directly on
// the parameters the optimizer updates.
package nn

import "github.com/ember-ml/ember/internal/scalar"

// Module is the base interface for all network components.
//
// Parameters returns every learnable scalar leaf owned by the module, in a
// stable order (each neuron's weights followed by its bias, neurons in
// construction order, layers in chain order). Optimizers rely on the order
// being identical across calls.
type Module interface {
	Parameters() []*scalar.Value
}

// ZeroGrad resets the gradient accumulator of every parameter of a module.
//
// Call before each backward pass to prevent gradients from one training
// step leaking into the next.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
