package ops

import (
	"math"

	"github.com/ember-ml/ember/internal/scalar"
)

// PowOp represents raising a node to a constant power: output = a^k.
//
// The exponent is a plain float64, never a graph node. Differentiating with
// respect to a variable exponent is unsupported in this engine, and the
// signature makes that a compile-time fact instead of a runtime surprise.
//
// Backward pass:
//   - d(a^k)/da = k * a^(k-1), so grad_a += k * a^(k-1) * outputGrad
type PowOp struct {
	a        *scalar.Value
	exponent float64
	output   *scalar.Value
}

// NewPowOp creates a new PowOp.
func NewPowOp(a *scalar.Value, exponent float64, output *scalar.Value) *PowOp {
	return &PowOp{a: a, exponent: exponent, output: output}
}

// Backward accumulates the power-rule gradient onto the base.
func (op *PowOp) Backward() {
	k := op.exponent
	op.a.AddGrad(k * math.Pow(op.a.Data(), k-1) * op.output.Grad())
}

// Inputs returns the base node [a]. The exponent is not a node.
func (op *PowOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.a}
}

// Output returns the node holding a^k.
func (op *PowOp) Output() *scalar.Value {
	return op.output
}

// Exponent returns the constant exponent k.
func (op *PowOp) Exponent() float64 {
	return op.exponent
}

// Name returns the diagnostic label.
func (op *PowOp) Name() string {
	return "pow"
}
