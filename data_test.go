package freeform_test

import (
	"math"
	"testing"

	ff "github.com/sharnoff/freeform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData(t *testing.T) {
	set, err := ff.Data(xorData)
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len())

	p, err := set.Get(3)
	require.NoError(t, err)
	assert.Equal(t, ff.Pair{Input: []float64{1, 1}, Ideal: []float64{0}, Significance: 1}, p)

	_, err = set.Get(4)
	assert.Error(t, err)

	other, err := set.OpenAdditional()
	require.NoError(t, err)
	assert.Equal(t, set.Len(), other.Len())

	_, err = ff.Data(nil)
	assert.IsType(t, ff.InvalidArgError{}, err)

	_, err = ff.Data([][][]float64{{{0, 0}, {0}}, {{0}, {1}}})
	assert.Error(t, err)

	for _, sig := range []float64{math.NaN(), math.Inf(1), -1, 0} {
		_, err = ff.NewBasicSet([]ff.Pair{{Input: []float64{0}, Ideal: []float64{0}, Significance: sig}})
		assert.IsType(t, ff.InvalidArgError{}, err, "significance %v", sig)
	}

	// a literal without Significance would otherwise contribute nothing to training
	_, err = ff.NewBasicSet([]ff.Pair{
		ff.NewPair([]float64{1}, []float64{1}),
		{Input: []float64{1}, Ideal: []float64{1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pair 1")

	_, err = ff.NewBasicSet([]ff.Pair{{Input: []float64{0}, Ideal: []float64{0}, Significance: 0.5}})
	assert.NoError(t, err)
}

func TestSeqData(t *testing.T) {
	step := ff.NewPair([]float64{1}, []float64{0})

	_, err := ff.SeqData([][]ff.Pair{{step, step}, {step}})
	assert.IsType(t, ff.InvalidArgError{}, err)

	_, err = ff.SeqData([][]ff.Pair{{}})
	assert.IsType(t, ff.InvalidArgError{}, err)

	_, err = ff.SeqData(nil)
	assert.Error(t, err)

	set, err := ff.SeqData([][]ff.Pair{{step, step, step}, {step, step}})
	require.NoError(t, err)
	assert.Equal(t, 5, set.Len())

	var starts []int
	for i := 0; i < set.Len(); i++ {
		if set.SequenceStart(i) {
			starts = append(starts, i)
		}
	}
	assert.Equal(t, []int{0, 3}, starts)
}

func TestErrorCalculation(t *testing.T) {
	actual := []float64{0, 1}
	ideal := []float64{1, 1}

	for _, tc := range []struct {
		mode ff.ErrorMode
		want float64
	}{
		// two samples of squared errors 1 and 0, then 0.25 and 0.25
		{ff.MSE, 1.5 / 4},
		{ff.RMS, math.Sqrt(1.5 / 4)},
		{ff.SSE, 1.5 / 2},
	} {
		ec := ff.ErrorCalculation{Mode: tc.mode}
		assert.Equal(t, 0.0, ec.Calculate(), "empty %s", tc.mode)

		ec.Update(actual, ideal, 1)
		ec.Update([]float64{0.5, 0.5}, ideal, 1)
		assert.InDelta(t, tc.want, ec.Calculate(), 1e-12, tc.mode.String())

		ec.Reset()
		assert.Equal(t, 0.0, ec.Calculate())
		assert.Equal(t, tc.mode, ec.Mode)

		mode, err := ff.ParseErrorMode(tc.mode.String())
		require.NoError(t, err)
		assert.Equal(t, tc.mode, mode)
	}

	_, err := ff.ParseErrorMode("mae")
	assert.Error(t, err)
}

func TestErrorCalculationMerge(t *testing.T) {
	var a, b, whole ff.ErrorCalculation

	for i := 0; i < 10; i++ {
		actual := []float64{float64(i) / 10}
		ideal := []float64{1}

		whole.Update(actual, ideal, 1)
		if i < 3 {
			a.Update(actual, ideal, 1)
		} else {
			b.Update(actual, ideal, 1)
		}
	}

	a.Merge(&b)
	assert.InDelta(t, whole.Calculate(), a.Calculate(), 1e-12)
}

func TestSignificance(t *testing.T) {
	var ec ff.ErrorCalculation
	ec.Update([]float64{0}, []float64{1}, 2)
	assert.Equal(t, 4.0, ec.Calculate())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, ff.DefaultConfig().Validate())

	conf := ff.DefaultConfig()
	conf.Threads = -3
	assert.Equal(t, ff.InvalidArgError{Arg: "Threads", Reason: "must be >= 0 (-3)"}, conf.Validate())

	for _, mod := range []func(*ff.Config){
		func(c *ff.Config) { c.Threads = -2 },
		func(c *ff.Config) { c.FlatSpot = math.Inf(1) },
		func(c *ff.Config) { c.FlatSpot = -0.1 },
		func(c *ff.Config) { c.ErrorMode = 17 },
	} {
		conf := ff.DefaultConfig()
		mod(&conf)
		assert.IsType(t, ff.InvalidArgError{}, conf.Validate())
	}
}

func TestBuffers(t *testing.T) {
	var nilBuf *ff.Buffers
	assert.False(t, nilBuf.Allocated())

	buf := ff.NewBuffers(3)
	assert.True(t, buf.Allocated())
	assert.Equal(t, 3, buf.Len())

	buf.Gradients[1] = 2
	buf.LastDeltas[1] = 2
	buf.ZeroGradients()
	assert.Equal(t, []float64{0, 0, 0}, buf.Gradients)
	assert.Equal(t, 2.0, buf.LastDeltas[1])

	buf.Clear()
	assert.False(t, buf.Allocated())
	assert.Equal(t, 0, buf.Len())
}
