// Copyright 2026 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff exposes the reverse-mode automatic-differentiation
// engine: the differentiable scalar operators that build the computation
// graph, and the backward pass that accumulates gradients through it.
//
// Example:
//
//	a := scalar.New(2.0)
//	b := scalar.New(-3.0)
//	c := autodiff.Add(autodiff.Mul(autodiff.Node(a), autodiff.Node(b)), autodiff.Lit(10))
//	autodiff.Backward(c)
//	fmt.Println(a.Grad()) // dc/da = -3
package autodiff

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/scalar"
)

// Operand is an operator input: either an existing graph node (Node) or a
// plain number promoted to a constant leaf (Lit).
type Operand = autodiff.Operand

// Node wraps an existing graph node as an operand.
func Node(v *scalar.Value) Operand {
	return autodiff.Node(v)
}

// Lit wraps a plain number as an operand.
func Lit(x float64) Operand {
	return autodiff.Lit(x)
}

// Add builds the node a + b.
func Add(a, b Operand) *scalar.Value {
	return autodiff.Add(a, b)
}

// Mul builds the node a * b.
func Mul(a, b Operand) *scalar.Value {
	return autodiff.Mul(a, b)
}

// Pow builds the node a^k for a constant exponent k. Variable exponents are
// unsupported by design, so k is a float64 and never a node.
func Pow(a Operand, k float64) *scalar.Value {
	return autodiff.Pow(a, k)
}

// Neg builds the node -a.
func Neg(a Operand) *scalar.Value {
	return autodiff.Neg(a)
}

// Sub builds the node a - b.
func Sub(a, b Operand) *scalar.Value {
	return autodiff.Sub(a, b)
}

// Div builds the node a / b.
func Div(a, b Operand) *scalar.Value {
	return autodiff.Div(a, b)
}

// Exp builds the node e^a.
func Exp(a Operand) *scalar.Value {
	return autodiff.Exp(a)
}

// Tanh builds the node tanh(a).
func Tanh(a Operand) *scalar.Value {
	return autodiff.Tanh(a)
}

// Backward computes the gradient of root with respect to every node
// reachable backward from it. Every non-root node must have a zero gradient
// beforehand; Backward panics otherwise.
func Backward(root *scalar.Value) {
	autodiff.Backward(root)
}

// TopoSort returns a topological order of the graph reachable backward from
// root: every node appears after all of its operands, root last.
func TopoSort(root *scalar.Value) []*scalar.Value {
	return autodiff.TopoSort(root)
}

// ZeroGrad resets the gradient of every node reachable backward from root.
func ZeroGrad(root *scalar.Value) {
	autodiff.ZeroGrad(root)
}
