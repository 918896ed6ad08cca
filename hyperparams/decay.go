package hyperparams

import (
	"math"
)

type decay struct {
	initial float64
	rate    float64
	every   int
}

// Decay returns a HyperParameter that starts at initial and is multiplied by rate once every
// 'every' iterations. If every is less than 1, it is treated as 1.
func Decay(initial, rate float64, every int) *decay {
	if every < 1 {
		every = 1
	}

	return &decay{initial, rate, every}
}

func (d *decay) TypeString() string {
	return "decay"
}

func (d *decay) Value(iter int) float64 {
	return d.initial * math.Pow(d.rate, float64(iter/d.every))
}
