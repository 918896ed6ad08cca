package activations

import (
	"testing"

	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

var registered = []string{
	"logistic", "tanh", "softsign", "elliott", "linear", "relu", "leaky-relu", "elu", "softplus",
}

// points avoid the kinks of the relu family at zero
var points = []float64{-2, -0.7, 0.3, 1.5}

func TestDerivatives(t *testing.T) {
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}

	for _, name := range registered {
		act, err := ff.GetActivation(name)
		require.NoError(t, err)
		require.Equal(t, name, act.TypeString())

		for _, x := range points {
			numeric := fd.Derivative(act.Value, x, settings)
			assert.InDelta(t, numeric, act.Deriv(x, act.Value(x)), 1e-6, "%s at %v", name, x)
		}
	}
}

func TestValues(t *testing.T) {
	assert.InDelta(t, 0.5, Logistic().Value(0), 1e-15)
	assert.InDelta(t, 1/(1+2.718281828459045), Logistic().Value(-1), 1e-12)
	assert.Equal(t, 0.0, ReLU().Value(-3))
	assert.InDelta(t, -0.03, LeakyReLU(0.01).Value(-3), 1e-15)
	assert.Equal(t, 0.5, Softsign().Value(1))
	assert.Equal(t, 0.75, Elliott(1).Value(1))
	assert.Equal(t, 4.0, Identity().Value(4))
}

func TestSaturating(t *testing.T) {
	for _, name := range registered {
		act, err := ff.GetActivation(name)
		require.NoError(t, err)

		s, ok := act.(ff.Saturating)
		assert.Equal(t, name == "logistic", ok && s.Saturating(), name)
	}
}

func TestDuplicateRegistration(t *testing.T) {
	err := ff.RegisterActivation("tanh", func() ff.Activation { return Tanh() })
	assert.Equal(t, ff.ErrRegisterDuplicate, errors.Cause(err))

	_, err = ff.GetActivation("sigmoid-ish")
	assert.Error(t, err)
}
