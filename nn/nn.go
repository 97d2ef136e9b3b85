// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes the feed-forward network built on the scalar autodiff
// engine: Neuron, Layer, MLP, and the sum-of-squared-errors loss.
package nn

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/nn"
)

// Module is the common interface for components with learnable parameters.
type Module = nn.Module

// Neuron is a single tanh unit: out = tanh(w · x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs, parameters uniform in [-1, 1).
//
// rng may be nil, in which case the shared math/rand source is used.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nin, rng)
}

// Layer is an ordered row of Neurons sharing one input vector.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons, each with nin inputs.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	return nn.NewLayer(nin, nout, rng)
}

// MLP is a multilayer perceptron: a chain of Layers.
type MLP = nn.MLP

// NewMLP creates an MLP with nin inputs and one layer per entry of sizes.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nil)
func NewMLP(nin int, sizes []int, rng *rand.Rand) *MLP {
	return nn.NewMLP(nin, sizes, rng)
}

// SSELoss computes the sum-of-squared-errors regression loss as a graph
// node, so Backward on it reaches the model parameters.
type SSELoss = nn.SSELoss

// ZeroGrad resets the gradient accumulator of every parameter of a module.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}
