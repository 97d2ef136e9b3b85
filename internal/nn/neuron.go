package nn

import (
	"fmt"
	"math/rand"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/scalar"
)

// Neuron is a single tanh unit: out = tanh(w · x + b).
//
// It owns one weight leaf per input plus one bias leaf, all initialized
// uniformly in [-1, 1). The leaves are created once at construction and
// only ever mutated in place by the optimizer; forward passes build new
// graph nodes on top of them.
type Neuron struct {
	weights []*scalar.Value
	bias    *scalar.Value
}

// NewNeuron creates a neuron with nin inputs.
//
// rng may be nil, in which case the shared math/rand source is used.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	if nin <= 0 {
		panic(fmt.Sprintf("nn.NewNeuron: input count must be positive, got %d", nin))
	}

	weights := make([]*scalar.Value, nin)
	for i := range weights {
		weights[i] = scalar.NewLabeled(Uniform(rng), fmt.Sprintf("w%d", i))
	}

	return &Neuron{
		weights: weights,
		bias:    scalar.NewLabeled(Uniform(rng), "b"),
	}
}

// Forward evaluates the neuron on an input vector, returning a new graph
// node: tanh(sum_i(w_i * x_i) + b).
//
// Panics if the input width does not match the neuron's.
func (n *Neuron) Forward(inputs []*scalar.Value) *scalar.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn.Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := autodiff.Node(n.bias)
	for i, w := range n.weights {
		prod := autodiff.Mul(autodiff.Node(w), autodiff.Node(inputs[i]))
		act = autodiff.Node(autodiff.Add(act, autodiff.Node(prod)))
	}

	return autodiff.Tanh(act)
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*scalar.Value {
	params := make([]*scalar.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}

// In returns the neuron's input width.
func (n *Neuron) In() int {
	return len(n.weights)
}
