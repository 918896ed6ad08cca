package hyperparams

import (
	"testing"

	ff "github.com/sharnoff/freeform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstant(t *testing.T) {
	c := Constant(0.7)
	assert.Equal(t, 0.7, c.Value(0))
	assert.Equal(t, 0.7, c.Value(1000))
}

func TestStep(t *testing.T) {
	s := Step(1).Add(10, 0.5).Add(20, 0.1)

	for iter, want := range map[int]float64{0: 1, 9: 1, 10: 0.5, 19: 0.5, 20: 0.1, 500: 0.1} {
		assert.Equal(t, want, s.Value(iter), "iteration %d", iter)
	}
}

func TestDecay(t *testing.T) {
	d := Decay(1, 0.5, 10)
	assert.Equal(t, 1.0, d.Value(9))
	assert.Equal(t, 0.5, d.Value(10))
	assert.Equal(t, 0.25, d.Value(25))

	assert.Equal(t, 0.5, Decay(1, 0.5, 0).Value(1))
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"constant", "step", "decay"} {
		hp, err := ff.GetHyperParameter(name)
		require.NoError(t, err)
		assert.Equal(t, name, hp.TypeString())
	}
}
