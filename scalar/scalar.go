// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar exposes the Value node type of the computation graph.
package scalar

import "github.com/ember-ml/ember/internal/scalar"

// Value is a scalar node in the computation graph: a real number together
// with a gradient accumulator and the operation that produced it.
//
// Identity is pointer identity; two Values with equal data are distinct
// graph vertices.
type Value = scalar.Value

// Op is the operation that produced a Value during the forward pass.
type Op = scalar.Op

// New creates a leaf Value with the given data and zero gradient.
func New(data float64) *Value {
	return scalar.New(data)
}

// NewLabeled creates a leaf Value with a diagnostic label.
func NewLabeled(data float64, label string) *Value {
	return scalar.NewLabeled(data, label)
}

// FromSlice promotes a slice of plain numbers to a slice of leaf Values.
func FromSlice(data []float64) []*Value {
	return scalar.FromSlice(data)
}
