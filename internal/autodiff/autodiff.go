// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// The forward pass builds a dynamic computation graph: every operator
// allocates a fresh output node and records the operation (with its operand
// edges) on that node. Backward then walks the graph from a root in reverse
// topological order and replays each node's local derivative rule, so each
// ancestor ends up holding d(root)/d(ancestor) in its gradient accumulator.
//
// Usage:
//
//	a := scalar.New(2.0)
//	b := scalar.New(-3.0)
//	c := autodiff.Add(autodiff.Mul(autodiff.Node(a), autodiff.Node(b)), autodiff.Lit(10))
//	autodiff.Backward(c)
//	fmt.Println(a.Grad()) // dc/da = -3
package autodiff

import (
	"math"

	"github.com/ember-ml/ember/internal/autodiff/ops"
	"github.com/ember-ml/ember/internal/scalar"
)

// Operand is the input to an operator: either an existing graph node or a
// plain number to be promoted to a constant leaf.
//
// Promotion happens exactly once, at the operator boundary, before any
// graph logic runs. This keeps the operators usable with either a node or a
// literal on either side (node*literal, literal+node, ...).
type Operand struct {
	node *scalar.Value
	lit  float64
}

// Node wraps an existing graph node as an operand.
func Node(v *scalar.Value) Operand {
	return Operand{node: v}
}

// Lit wraps a plain number as an operand. The operator it is passed to
// promotes it to a constant leaf node with no operands and no gradient rule.
func Lit(x float64) Operand {
	return Operand{lit: x}
}

// resolve returns the operand's node, promoting a literal to a fresh
// constant leaf.
func (o Operand) resolve() *scalar.Value {
	if o.node != nil {
		return o.node
	}
	return scalar.New(o.lit)
}

// Add builds the node a + b.
func Add(a, b Operand) *scalar.Value {
	x, y := a.resolve(), b.resolve()
	out := scalar.New(x.Data() + y.Data())
	out.SetOp(ops.NewAddOp(x, y, out))
	return out
}

// Mul builds the node a * b.
func Mul(a, b Operand) *scalar.Value {
	x, y := a.resolve(), b.resolve()
	out := scalar.New(x.Data() * y.Data())
	out.SetOp(ops.NewMulOp(x, y, out))
	return out
}

// Pow builds the node a^k for a constant exponent k.
//
// The exponent is deliberately a float64 and not an Operand: this engine
// has no gradient rule for variable exponents, so passing a node here is a
// type error rather than a silently wrong derivative.
func Pow(a Operand, k float64) *scalar.Value {
	x := a.resolve()
	out := scalar.New(math.Pow(x.Data(), k))
	out.SetOp(ops.NewPowOp(x, k, out))
	return out
}

// Neg builds the node -a, expressed as a * (-1).
func Neg(a Operand) *scalar.Value {
	return Mul(a, Lit(-1))
}

// Sub builds the node a - b, expressed as a + (-b).
func Sub(a, b Operand) *scalar.Value {
	return Add(a, Node(Neg(b)))
}

// Div builds the node a / b, expressed as a * b^(-1).
func Div(a, b Operand) *scalar.Value {
	return Mul(a, Node(Pow(b, -1)))
}

// Exp builds the node e^a.
func Exp(a Operand) *scalar.Value {
	x := a.resolve()
	out := scalar.New(math.Exp(x.Data()))
	out.SetOp(ops.NewExpOp(x, out))
	return out
}

// Tanh builds the node tanh(a).
func Tanh(a Operand) *scalar.Value {
	x := a.resolve()
	out := scalar.New(math.Tanh(x.Data()))
	out.SetOp(ops.NewTanhOp(x, out))
	return out
}
