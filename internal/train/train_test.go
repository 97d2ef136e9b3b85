package train_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/scalar"
	"github.com/ember-ml/ember/internal/train"
)

func dataset() []train.Sample {
	return []train.Sample{
		{Inputs: []float64{2.0, 3.0, -1.0}, Target: 1.0},
		{Inputs: []float64{3.0, -1.0, 0.5}, Target: -1.0},
		{Inputs: []float64{0.5, 1.0, 1.0}, Target: -1.0},
		{Inputs: []float64{1.0, 1.0, -1.0}, Target: 1.0},
	}
}

// The end-to-end contract: 20 gradient-descent steps at lr=0.05 reduce the
// sum-of-squared-errors loss. Checked across several seeds since individual
// steps need not decrease monotonically.
func TestFit_LossDecreases(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		model := nn.NewMLP(3, []int{4, 4, 1}, rng)

		history := train.Fit(model, dataset(), train.Config{LR: 0.05, Steps: 20})

		require.Len(t, history, 21)
		assert.Less(t, history[20], history[0], "seed %d: loss after 20 steps must beat initial loss", seed)
	}
}

func TestFit_SingleSample(t *testing.T) {
	model := nn.NewMLP(3, []int{4, 4, 1}, rand.New(rand.NewSource(3)))
	data := []train.Sample{{Inputs: []float64{2.0, 3.0, -1.0}, Target: 1.0}}

	history := train.Fit(model, data, train.Config{LR: 0.05, Steps: 20})

	assert.Less(t, history[len(history)-1], history[0])
}

func TestFit_HistoryMatchesEvaluate(t *testing.T) {
	model := nn.NewMLP(3, []int{4, 1}, rand.New(rand.NewSource(4)))
	data := dataset()

	history := train.Fit(model, data, train.Config{LR: 0.05, Steps: 5})

	// The last history entry is the loss of the final parameters.
	assert.InDelta(t, train.Evaluate(model, data), history[len(history)-1], 1e-12)
}

func TestFit_Defaults(t *testing.T) {
	model := nn.NewMLP(2, []int{2, 1}, rand.New(rand.NewSource(5)))
	data := []train.Sample{{Inputs: []float64{1.0, -1.0}, Target: 0.5}}

	history := train.Fit(model, data, train.Config{})

	assert.Len(t, history, 101, "default is 100 steps")
}

func TestFit_BadInputPanics(t *testing.T) {
	model := nn.NewMLP(3, []int{2, 1}, rand.New(rand.NewSource(6)))

	assert.Panics(t, func() {
		train.Fit(model, nil, train.Config{})
	})
	assert.Panics(t, func() {
		train.Fit(model, []train.Sample{{Inputs: []float64{1.0}, Target: 0}}, train.Config{})
	})
}

func TestFit_OnStepCallback(t *testing.T) {
	model := nn.NewMLP(2, []int{2, 1}, rand.New(rand.NewSource(7)))
	data := []train.Sample{{Inputs: []float64{1.0, 2.0}, Target: -0.5}}

	var steps []int
	train.Fit(model, data, train.Config{
		Steps: 3,
		OnStep: func(step int, loss float64) {
			steps = append(steps, step)
			assert.GreaterOrEqual(t, loss, 0.0, "squared-error loss is non-negative")
		},
	})

	assert.Equal(t, []int{0, 1, 2}, steps)
}

func TestEvaluate(t *testing.T) {
	model := nn.NewMLP(2, []int{1}, rand.New(rand.NewSource(8)))
	data := []train.Sample{
		{Inputs: []float64{0.5, -0.5}, Target: 0.0},
		{Inputs: []float64{1.0, 1.0}, Target: 1.0},
	}

	want := 0.0
	for _, s := range data {
		pred := model.ForwardScalar(scalar.FromSlice(s.Inputs))
		diff := pred.Data() - s.Target
		want += diff * diff
	}

	assert.InDelta(t, want, train.Evaluate(model, data), 1e-12)
}
