package costfuncs

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// costs gives the cost of a single output for each registered ErrorFunction
var costs = map[string]func(actual, ideal float64) float64{
	"linear": func(a, i float64) float64 { return (i - a) * (i - a) / 2 },
	"cross-entropy": func(a, i float64) float64 {
		return -(i*math.Log(a) + (1-i)*math.Log(1-a))
	},
	"huber": func(a, i float64) float64 {
		d := math.Abs(i - a)
		if d > 1 {
			return d - 0.5
		}
		return d * d / 2
	},
	"abs": func(a, i float64) float64 { return math.Abs(i - a) },
}

func TestTermIsNegativeDerivative(t *testing.T) {
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}

	for name, cost := range costs {
		f, err := ff.GetErrorFunction(name)
		require.NoError(t, err)
		require.Equal(t, name, f.TypeString())

		for _, tc := range []struct{ actual, ideal float64 }{
			{0.2, 1}, {0.9, 0}, {0.45, 0.5}, {0.7, 0.3}, {0.9, -1},
		} {
			numeric := fd.Derivative(func(a float64) float64 { return cost(a, tc.ideal) }, tc.actual, settings)
			assert.InDelta(t, -numeric, f.Term(tc.actual, tc.ideal), 1e-6, "%s at %v", name, tc)
		}
	}
}

func TestTerms(t *testing.T) {
	assert.Equal(t, 0.75, Linear().Term(0.25, 1))
	assert.Equal(t, -1.0, Abs().Term(3, 1))
	assert.Equal(t, 0.0, Abs().Term(1, 1))
	assert.Equal(t, 0.5, Huber(2).Term(0.5, 1))
	assert.Equal(t, -2.0, Huber(2).Term(5, 1))

	// logistic derivative at 0.8 is 0.16; multiplied together, only ideal - actual is left
	assert.InDelta(t, 0.2, CrossEntropy().Term(0.8, 1)*0.16, 1e-12)

	// outputs of exactly 0 or 1 still give finite terms
	for _, a := range []float64{0, 1} {
		term := CrossEntropy().Term(a, 0.5)
		assert.False(t, math.IsInf(term, 0) || math.IsNaN(term), "actual %v", a)
	}

	assert.Panics(t, func() { Huber(0) })
}

func TestRegistration(t *testing.T) {
	err := ff.RegisterErrorFunction("huber", func() ff.ErrorFunction { return Huber(3) })
	assert.Equal(t, ff.ErrRegisterDuplicate, errors.Cause(err))

	err = ff.RegisterErrorFunction("none", func() ff.ErrorFunction { return nil })
	assert.Equal(t, ff.ErrRegisterNilReturn, errors.Cause(err))

	_, err = ff.GetErrorFunction("hinge")
	assert.Error(t, err)
}
