package rules

import (
	"testing"

	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
	"github.com/sharnoff/freeform/hyperparams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResilientGrowsStep(t *testing.T) {
	r := Resilient().MaxStep(0.5)
	buf := ff.NewBuffers(1)
	r.Init(buf)
	ws := []float64{0}

	last := 0.0
	for i := 0; i < 20; i++ {
		buf.Gradients[0] = 1
		before := ws[0]
		require.NoError(t, r.Update(i, ws, buf))

		step := buf.UpdateValues[0]
		assert.True(t, step >= last, "step shrank on iteration %d", i)
		assert.True(t, step <= 0.5)
		assert.InDelta(t, step, ws[0]-before, 1e-12)
		assert.Equal(t, 0.0, buf.Gradients[0])
		last = step
	}

	assert.Equal(t, 0.5, buf.UpdateValues[0])
}

func TestResilientSignFlip(t *testing.T) {
	r := Resilient()
	buf := ff.NewBuffers(1)
	r.Init(buf)
	ws := []float64{1}

	buf.Gradients[0] = 1
	require.NoError(t, r.Update(0, ws, buf))
	assert.Equal(t, 1+DefaultInitialUpdate, ws[0])

	buf.Gradients[0] = 1
	require.NoError(t, r.Update(1, ws, buf))
	before := 1 + DefaultInitialUpdate
	step := buf.UpdateValues[0]
	assert.InDelta(t, DefaultInitialUpdate*PositiveEta, step, 1e-12)

	// the flip undoes the last change
	buf.Gradients[0] = -1
	require.NoError(t, r.Update(2, ws, buf))
	assert.InDelta(t, before, ws[0], 1e-12)
	assert.InDelta(t, step*NegativeEta, buf.UpdateValues[0], 1e-12)
	assert.Equal(t, 0.0, buf.LastGradients[0])

	// the step is not adjusted right after a flip
	buf.Gradients[0] = -1
	require.NoError(t, r.Update(3, ws, buf))
	assert.InDelta(t, step*NegativeEta, buf.UpdateValues[0], 1e-12)
	assert.InDelta(t, before-step*NegativeEta, ws[0], 1e-12)
}

func TestResilientStepFloor(t *testing.T) {
	r := Resilient().InitialUpdate(2 * DeltaMin)
	buf := ff.NewBuffers(1)
	r.Init(buf)
	ws := []float64{0}

	for i := 0; i < 10; i++ {
		buf.Gradients[0] = 1
		if i%2 == 1 {
			buf.Gradients[0] = -1
		}
		require.NoError(t, r.Update(i, ws, buf))
		assert.True(t, buf.UpdateValues[0] >= DeltaMin)
	}

	assert.Equal(t, DeltaMin, buf.UpdateValues[0])
}

func TestResilientZeroGradient(t *testing.T) {
	r := Resilient()
	buf := ff.NewBuffers(1)
	r.Init(buf)
	ws := []float64{0.25}

	buf.Gradients[0] = 1e-20
	require.NoError(t, r.Update(0, ws, buf))
	assert.Equal(t, 0.25, ws[0])
	assert.Equal(t, DefaultInitialUpdate, buf.UpdateValues[0])
}

func TestBackpropMomentum(t *testing.T) {
	b := Backprop().LearningRate(hyperparams.Constant(0.5)).Momentum(hyperparams.Constant(0.25))
	buf := ff.NewBuffers(2)
	b.Init(buf)
	ws := []float64{0, 1}

	buf.Gradients[0], buf.Gradients[1] = 1, -2
	require.NoError(t, b.Update(0, ws, buf))
	assert.Equal(t, []float64{0.5, 0}, ws)
	assert.Equal(t, []float64{0, 0}, buf.Gradients)

	buf.Gradients[0], buf.Gradients[1] = 1, 0
	require.NoError(t, b.Update(1, ws, buf))
	// 0.5 + (0.5 + 0.125), 0 + (0 - 0.25)
	assert.Equal(t, []float64{1.125, -0.25}, ws)
	assert.Equal(t, []float64{0.625, -0.25}, buf.LastDeltas)
}

func TestBackpropNilHyperParameter(t *testing.T) {
	assert.PanicsWithValue(t, ff.NilArgError{Arg: "Learning rate"}, func() {
		Backprop().LearningRate(nil)
	})
}

func TestUpdateChecks(t *testing.T) {
	for _, r := range []ff.LearningRule{Backprop(), Resilient()} {
		buf := ff.NewBuffers(2)
		r.Init(buf)

		err := r.Update(0, []float64{1}, buf)
		assert.Equal(t, ff.SizeMismatchError{Expected: 2, Got: 1, Of: "weights"}, errors.Cause(err), r.TypeString())

		buf.Clear()
		err = r.Update(0, []float64{1, 2}, buf)
		assert.Equal(t, ff.ErrNotAllocated, errors.Cause(err), r.TypeString())
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"backprop", "rprop"} {
		r, err := ff.GetLearningRule(name)
		require.NoError(t, err)
		assert.Equal(t, name, r.TypeString())
	}

	assert.Equal(t, "rprop", ff.DefaultLearningRule().TypeString())
}
