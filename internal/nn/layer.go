package nn

import (
	"fmt"
	"math/rand"

	"github.com/ember-ml/ember/internal/scalar"
)

// Layer is an ordered row of Neurons that all read the same input vector.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each with nin inputs.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	if nout <= 0 {
		panic(fmt.Sprintf("nn.NewLayer: output count must be positive, got %d", nout))
	}

	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward applies every neuron to the same input vector and returns their
// outputs in neuron order.
func (l *Layer) Forward(inputs []*scalar.Value) []*scalar.Value {
	outs := make([]*scalar.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Forward(inputs)
	}
	return outs
}

// ForwardScalar evaluates a single-output layer and returns the one node
// directly. Panics if the layer has more than one neuron.
func (l *Layer) ForwardScalar(inputs []*scalar.Value) *scalar.Value {
	if len(l.neurons) != 1 {
		panic(fmt.Sprintf("nn.Layer.ForwardScalar: layer has %d outputs, want 1", len(l.neurons)))
	}
	return l.neurons[0].Forward(inputs)
}

// Parameters returns the concatenation of each neuron's parameters,
// neuron order preserved.
func (l *Layer) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// In returns the layer's input width.
func (l *Layer) In() int {
	return l.neurons[0].In()
}

// Out returns the layer's output width (its neuron count).
func (l *Layer) Out() int {
	return len(l.neurons)
}
