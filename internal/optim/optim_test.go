package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ember-ml/ember/internal/optim"
	"github.com/ember-ml/ember/internal/scalar"
)

func TestSGD_Step(t *testing.T) {
	a := scalar.New(1.0)
	b := scalar.New(-2.0)
	a.SetGrad(0.5)
	b.SetGrad(-1.0)

	sgd := optim.NewSGD([]*scalar.Value{a, b}, optim.SGDConfig{LR: 0.1})
	sgd.Step()

	assert.InDelta(t, 0.95, a.Data(), 1e-12) // 1.0 - 0.1*0.5
	assert.InDelta(t, -1.9, b.Data(), 1e-12) // -2.0 - 0.1*(-1.0)
}

func TestSGD_StepIsUniform(t *testing.T) {
	params := []*scalar.Value{scalar.New(1), scalar.New(2), scalar.New(3)}
	for _, p := range params {
		p.SetGrad(1.0)
	}

	sgd := optim.NewSGD(params, optim.SGDConfig{LR: 0.5})
	sgd.Step()

	assert.Equal(t, 0.5, params[0].Data())
	assert.Equal(t, 1.5, params[1].Data())
	assert.Equal(t, 2.5, params[2].Data())
}

func TestSGD_ZeroGrad(t *testing.T) {
	params := []*scalar.Value{scalar.New(1), scalar.New(2)}
	params[0].SetGrad(3.0)
	params[1].SetGrad(-4.0)

	sgd := optim.NewSGD(params, optim.SGDConfig{LR: 0.1})
	sgd.ZeroGrad()

	assert.Zero(t, params[0].Grad())
	assert.Zero(t, params[1].Grad())
}

func TestSGD_DefaultLR(t *testing.T) {
	sgd := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, sgd.GetLR())
}

func TestSGD_SetLR(t *testing.T) {
	sgd := optim.NewSGD(nil, optim.SGDConfig{LR: 0.1})
	sgd.SetLR(0.05)
	assert.Equal(t, 0.05, sgd.GetLR())
}

// Step must not touch gradients: zeroing is the caller's explicit move.
func TestSGD_StepPreservesGradients(t *testing.T) {
	p := scalar.New(1.0)
	p.SetGrad(2.0)

	sgd := optim.NewSGD([]*scalar.Value{p}, optim.SGDConfig{LR: 0.1})
	sgd.Step()

	assert.Equal(t, 2.0, p.Grad())
}
