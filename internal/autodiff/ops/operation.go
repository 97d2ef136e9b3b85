// Package ops implements the differentiable scalar operations recorded in
// the computation graph.
//
// Each operation implements scalar.Op: it remembers its input node(s) and
// output node from the forward pass, and Backward applies the op's
// closed-form local derivative, accumulating d(root)/d(input) onto each
// input's gradient.
//
// Primitive operations:
//   - AddOp: d(a+b)/da = 1, d(a+b)/db = 1
//   - MulOp: d(a*b)/da = b, d(a*b)/db = a
//   - PowOp: d(a^k)/da = k * a^(k-1)   (k is a plain float, by design)
//   - ExpOp: d(exp(a))/da = exp(a), already computed as the output
//   - TanhOp: d(tanh(a))/da = 1 - tanh(a)²
//
// Negate, subtract, and divide have no op of their own: the operator layer
// composes them from MulOp, AddOp, and PowOp, so their gradients follow
// from the primitives above.
package ops

import "github.com/ember-ml/ember/internal/scalar"

// Compile-time checks that every op satisfies scalar.Op.
var (
	_ scalar.Op = (*AddOp)(nil)
	_ scalar.Op = (*MulOp)(nil)
	_ scalar.Op = (*PowOp)(nil)
	_ scalar.Op = (*ExpOp)(nil)
	_ scalar.Op = (*TanhOp)(nil)
)
