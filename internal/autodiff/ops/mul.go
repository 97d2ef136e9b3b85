package ops

import "github.com/ember-ml/ember/internal/scalar"

// MulOp represents scalar multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += b * outputGrad
//   - d(a*b)/db = a, so grad_b += a * outputGrad
type MulOp struct {
	a, b   *scalar.Value
	output *scalar.Value
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output *scalar.Value) *MulOp {
	return &MulOp{a: a, b: b, output: output}
}

// Backward accumulates each input's share of the output gradient.
func (op *MulOp) Backward() {
	grad := op.output.Grad()
	op.a.AddGrad(op.b.Data() * grad)
	op.b.AddGrad(op.a.Data() * grad)
}

// Inputs returns the operand nodes [a, b].
func (op *MulOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.a, op.b}
}

// Output returns the node holding a * b.
func (op *MulOp) Output() *scalar.Value {
	return op.output
}

// Name returns the diagnostic label.
func (op *MulOp) Name() string {
	return "*"
}
