// Package scalar defines the Value type: a single real number that is also
// a vertex in a dynamically built computation graph.
//
// A Value carries the forward-evaluated number, a gradient accumulator, and
// a reference to the operation that produced it (nil for leaves). Operator
// functions live in internal/autodiff; this package only models the node.
//
// Node identity is pointer identity. Two Values holding the same number are
// distinct graph vertices, and everything that walks the graph (topological
// sort, visited sets) keys on the pointer, never on the number.
package scalar

import "fmt"

// Op is an operation that produced a Value during the forward pass.
//
// Implementations live in internal/autodiff/ops. Each op records its input
// nodes and its output node, and Backward applies the op's local
// partial-derivative rule: it reads the output's accumulated gradient and
// adds each input's share onto that input's gradient accumulator.
type Op interface {
	// Backward propagates the output node's gradient onto the inputs'
	// gradient accumulators using this op's local derivative rule.
	// It must accumulate (+=), never overwrite, so fan-out sums correctly.
	Backward()

	// Inputs returns the operand nodes this op was applied to.
	Inputs() []*Value

	// Output returns the node this op produced.
	Output() *Value

	// Name returns a short diagnostic label ("+", "*", "pow", ...).
	// It is never consulted by the engine itself.
	Name() string
}

// Value is a scalar node in the computation graph.
//
// The gradient starts at zero and is only ever mutated by a backward pass
// (which accumulates into it) or by an explicit reset between training
// steps. The forward pass never touches existing gradients.
type Value struct {
	data  float64
	grad  float64
	op    Op // nil for leaf nodes (inputs, parameters, constants)
	label string
}

// New creates a leaf Value with the given data and zero gradient.
func New(data float64) *Value {
	return &Value{data: data}
}

// NewLabeled creates a leaf Value with a diagnostic label.
//
// Labels are for humans and graph visualizers; no algorithm reads them.
func NewLabeled(data float64, label string) *Value {
	return &Value{data: data, label: label}
}

// FromSlice promotes a slice of plain numbers to a slice of leaf Values.
//
// Handy for feeding raw input vectors to Neuron/Layer/MLP Forward methods.
func FromSlice(data []float64) []*Value {
	values := make([]*Value, len(data))
	for i, x := range data {
		values[i] = New(x)
	}
	return values
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the forward value.
//
// Only meaningful for leaf nodes: the training loop uses it to apply
// gradient-descent updates to parameters. Interior nodes are rebuilt by the
// next forward pass, so mutating them has no lasting effect.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient d(root)/d(v) after a backward pass.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad overwrites the gradient. Used by the backward pass to seed the
// root with 1 and by callers resetting state between steps.
func (v *Value) SetGrad(grad float64) {
	v.grad = grad
}

// AddGrad accumulates into the gradient. This is the only mutation ops
// perform during a backward pass; accumulation (rather than assignment) is
// what makes fan-out nodes receive the sum over all consuming paths.
func (v *Value) AddGrad(delta float64) {
	v.grad += delta
}

// ZeroGrad resets the gradient accumulator to zero.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the operation that produced this node, or nil for leaves.
func (v *Value) Op() Op {
	return v.op
}

// SetOp attaches the producing operation. Called exactly once, by the
// operator layer, immediately after it allocates the output node.
func (v *Value) SetOp(op Op) {
	v.op = op
}

// IsLeaf reports whether this node has no producing operation.
func (v *Value) IsLeaf() bool {
	return v.op == nil
}

// Inputs returns the operand nodes this Value was derived from.
// Leaves return nil.
func (v *Value) Inputs() []*Value {
	if v.op == nil {
		return nil
	}
	return v.op.Inputs()
}

// OpName returns the producing op's label, or "" for leaves.
func (v *Value) OpName() string {
	if v.op == nil {
		return ""
	}
	return v.op.Name()
}

// Label returns the diagnostic label, if any.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the diagnostic label.
func (v *Value) SetLabel(label string) {
	v.label = label
}

// String formats the node for debugging and graph dumps.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(%s: data=%g, grad=%g)", v.label, v.data, v.grad)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
}
