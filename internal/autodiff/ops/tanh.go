package ops

import "github.com/ember-ml/ember/internal/scalar"

// TanhOp represents the hyperbolic tangent activation: output = tanh(a).
//
// Backward pass:
//   - d(tanh(a))/da = 1 - tanh²(a) = 1 - output²
//
// Since tanh(a) was already computed as the forward value, the rule is
// expressed in terms of the output and never re-evaluates tanh.
type TanhOp struct {
	a      *scalar.Value
	output *scalar.Value
}

// NewTanhOp creates a new TanhOp.
func NewTanhOp(a, output *scalar.Value) *TanhOp {
	return &TanhOp{a: a, output: output}
}

// Backward accumulates (1 - output²) * outputGrad onto the input.
func (op *TanhOp) Backward() {
	t := op.output.Data()
	op.a.AddGrad((1 - t*t) * op.output.Grad())
}

// Inputs returns the operand node [a].
func (op *TanhOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.a}
}

// Output returns the node holding tanh(a).
func (op *TanhOp) Output() *scalar.Value {
	return op.output
}

// Name returns the diagnostic label.
func (op *TanhOp) Name() string {
	return "tanh"
}
