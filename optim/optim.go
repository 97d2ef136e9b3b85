// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim exposes parameter optimization for networks built on the
// scalar autodiff engine.
package optim

import (
	"github.com/ember-ml/ember/internal/optim"
	"github.com/ember-ml/ember/internal/scalar"
)

// Optimizer is the common interface for optimization algorithms.
type Optimizer = optim.Optimizer

// Config is the base configuration for optimizers.
type Config = optim.Config

// SGD implements plain gradient descent: param -= lr * gradient.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameter leaves.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
func NewSGD(params []*scalar.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
