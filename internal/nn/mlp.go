package nn

import (
	"fmt"
	"math/rand"

	"github.com/ember-ml/ember/internal/scalar"
)

// MLP is a multilayer perceptron: a chain of Layers where each layer's
// output width is the next layer's input width.
//
// NewMLP(3, []int{4, 4, 1}, rng) builds a 3-input network with two hidden
// layers of 4 tanh units and a single output unit.
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of sizes.
func NewMLP(nin int, sizes []int, rng *rand.Rand) *MLP {
	if len(sizes) == 0 {
		panic("nn.NewMLP: at least one layer size is required")
	}

	widths := append([]int{nin}, sizes...)
	layers := make([]*Layer, len(sizes))
	for i := range layers {
		layers[i] = NewLayer(widths[i], widths[i+1], rng)
	}
	return &MLP{layers: layers}
}

// Forward feeds the input vector through each layer in sequence and returns
// the final layer's outputs.
func (m *MLP) Forward(inputs []*scalar.Value) []*scalar.Value {
	outs := inputs
	for _, l := range m.layers {
		outs = l.Forward(outs)
	}
	return outs
}

// ForwardScalar evaluates a single-output MLP and returns the one node
// directly. Panics if the final layer is wider than 1.
func (m *MLP) ForwardScalar(inputs []*scalar.Value) *scalar.Value {
	last := m.layers[len(m.layers)-1]
	if last.Out() != 1 {
		panic(fmt.Sprintf("nn.MLP.ForwardScalar: network has %d outputs, want 1", last.Out()))
	}
	return m.Forward(inputs)[0]
}

// Parameters returns the concatenation of every layer's parameters in
// chain order.
func (m *MLP) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// In returns the network's input width.
func (m *MLP) In() int {
	return m.layers[0].In()
}

// Out returns the network's output width.
func (m *MLP) Out() int {
	return m.layers[len(m.layers)-1].Out()
}

// Len returns the number of layers.
func (m *MLP) Len() int {
	return len(m.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (m *MLP) Layer(index int) *Layer {
	if index < 0 || index >= len(m.layers) {
		panic("nn.MLP.Layer: index out of bounds")
	}
	return m.layers[index]
}
