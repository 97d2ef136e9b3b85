package ops

import "github.com/ember-ml/ember/internal/scalar"

// AddOp represents scalar addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so a receives the output gradient unscaled
//   - d(a+b)/db = 1, so b receives the output gradient unscaled
type AddOp struct {
	a, b   *scalar.Value
	output *scalar.Value
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output *scalar.Value) *AddOp {
	return &AddOp{a: a, b: b, output: output}
}

// Backward accumulates the output gradient onto both inputs.
//
// When a and b are the same node (e.g. v + v), the two accumulations sum,
// which is exactly the fan-out behavior the chain rule requires.
func (op *AddOp) Backward() {
	grad := op.output.Grad()
	op.a.AddGrad(grad)
	op.b.AddGrad(grad)
}

// Inputs returns the operand nodes [a, b].
func (op *AddOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.a, op.b}
}

// Output returns the node holding a + b.
func (op *AddOp) Output() *scalar.Value {
	return op.output
}

// Name returns the diagnostic label.
func (op *AddOp) Name() string {
	return "+"
}
