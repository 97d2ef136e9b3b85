package optim

import "github.com/ember-ml/ember/internal/scalar"

// SGD implements plain gradient descent:
//
//	param = param - lr * gradient
//
// A single fixed step size applied uniformly to every parameter.
type SGD struct {
	params []*scalar.Value
	lr     float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer over the given parameter leaves.
func NewSGD(params []*scalar.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params: params,
		lr:     config.LR,
	}
}

// Step applies one gradient-descent update to every parameter, in place.
func (s *SGD) Step() {
	for _, p := range s.params {
		p.SetData(p.Data() - s.lr*p.Grad())
	}
}

// ZeroGrad clears every parameter's gradient accumulator.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for schedules driven by the caller.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
