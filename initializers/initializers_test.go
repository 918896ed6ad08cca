package initializers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestSeedReproducible(t *testing.T) {
	a, b := make([]float64, 50), make([]float64, 50)

	Seed(42)
	Random(Uniform()).Set(10, 10, a)
	Seed(42)
	Random(Uniform()).Set(10, 10, b)

	assert.Equal(t, a, b)
}

func TestUniformBounds(t *testing.T) {
	Seed(1)
	ws := make([]float64, 1000)
	Random(Uniform().Bounds(3, -2)).Set(1, 1, ws)

	for _, w := range ws {
		assert.True(t, w >= -2 && w < 3, "%v out of bounds", w)
	}
}

func TestNormal(t *testing.T) {
	Seed(7)
	ws := make([]float64, 20000)
	Random(Normal().Mean(3).SD(2)).Set(1, 1, ws)

	mean, sd := stat.MeanStdDev(ws, nil)
	assert.InDelta(t, 3, mean, 0.1)
	assert.InDelta(t, 2, sd, 0.1)
}

func TestTruncNormal(t *testing.T) {
	Seed(7)
	ws := make([]float64, 5000)
	Random(TruncNormal().Trunc(1)).Set(1, 1, ws)

	for _, w := range ws {
		assert.True(t, math.Abs(w) <= 1, "%v not truncated", w)
	}
}

func TestVarianceScaling(t *testing.T) {
	Seed(11)
	wide, narrow := make([]float64, 5000), make([]float64, 5000)
	VarianceScaling().In().Set(100, 1, wide)
	VarianceScaling().In().Set(1, 1, narrow)

	assert.Less(t, stat.StdDev(wide, nil), stat.StdDev(narrow, nil))

	// a fan-in of zero must not divide by zero
	zero := make([]float64, 10)
	LeCun().Set(0, 0, zero)
	for _, w := range zero {
		assert.False(t, math.IsNaN(w) || math.IsInf(w, 0))
	}
}

func TestConstant(t *testing.T) {
	ws := make([]float64, 3)
	Constant(0.25).Set(3, 0, ws)
	assert.Equal(t, []float64{0.25, 0.25, 0.25}, ws)
}

func TestSetDefault(t *testing.T) {
	require.NoError(t, SetDefault("uniform-upper", 0.5))
	defer SetDefault_Lazy("uniform-upper", 1)

	Seed(3)
	ws := make([]float64, 500)
	Random(Uniform()).Set(1, 1, ws)
	for _, w := range ws {
		assert.True(t, w < 0.5)
	}

	assert.Error(t, SetDefault("nonexistent", 1))
	assert.Error(t, SetDefault("normal-sd", math.NaN()))
	assert.Panics(t, func() { SetDefault_Lazy("nonexistent", 1) })
}
