package ops

import "github.com/ember-ml/ember/internal/scalar"

// ExpOp represents the exponential: output = exp(a).
//
// Backward pass:
//   - d(exp(a))/da = exp(a) = output, so grad_a += output * outputGrad
type ExpOp struct {
	a      *scalar.Value
	output *scalar.Value
}

// NewExpOp creates a new ExpOp.
func NewExpOp(a, output *scalar.Value) *ExpOp {
	return &ExpOp{a: a, output: output}
}

// Backward accumulates the gradient onto the input.
//
// The derivative of exp is exp itself, which was already computed during
// the forward pass, so the rule reuses the output's value.
func (op *ExpOp) Backward() {
	op.a.AddGrad(op.output.Data() * op.output.Grad())
}

// Inputs returns the operand node [a].
func (op *ExpOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.a}
}

// Output returns the node holding exp(a).
func (op *ExpOp) Output() *scalar.Value {
	return op.output
}

// Name returns the diagnostic label.
func (op *ExpOp) Name() string {
	return "exp"
}
