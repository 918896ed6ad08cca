package penalties

import (
	"testing"

	ff "github.com/sharnoff/freeform"
	"github.com/sharnoff/freeform/hyperparams"
	"github.com/sharnoff/freeform/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPenalize(t *testing.T) {
	for _, tc := range []struct {
		p            Penalty
		weight, want float64
	}{
		{L1(0.1), 2, -0.1},
		{L1(0.1), -2, 0.1},
		{L1(0.1), 0, 0},
		{L2(0.1), 2, -0.4},
		{ElasticNet(1, 0.1), -2, 0.1},
		{ElasticNet(0, 0.1), 2, -0.4},
		{ElasticNet(0.5, 0.1), 2, -0.25},
	} {
		assert.InDelta(t, tc.want, tc.p.Penalize(tc.weight, 0), 1e-12, "%s at %v", tc.p.TypeString(), tc.weight)
	}
}

func TestPenalized(t *testing.T) {
	rule, err := Penalized(rules.Backprop().LearningRate(hyperparams.Constant(1)).Momentum(hyperparams.Constant(0)), L2(0.25))
	require.NoError(t, err)
	assert.Equal(t, "backprop+l2-ridge", rule.TypeString())

	buf := ff.NewBuffers(2)
	rule.Init(buf)
	ws := []float64{1, -2}
	buf.Gradients[0] = 0.5

	require.NoError(t, rule.Update(0, ws, buf))
	// 1 + 0.5 - 0.5*1, -2 + 0.5*2
	assert.Equal(t, []float64{1, -1}, ws)

	_, err = Penalized(nil, L1(1))
	assert.Error(t, err)
	_, err = Penalized(rules.Resilient(), nil)
	assert.Error(t, err)

	assert.Error(t, rule.Update(0, []float64{1}, buf))
}
