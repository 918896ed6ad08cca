package costfuncs

import (
	"math"
)

type huber struct {
	δ float64
}

// Huber returns the ErrorFunction of the Huber loss, which is the squared error for differences
// up to δ and the absolute error beyond it. δ must be greater than zero.
func Huber(δ float64) huber {
	if !(δ > 0) {
		panic("costfuncs: Huber δ must be > 0")
	}

	return huber{δ}
}

func (h huber) TypeString() string {
	return "huber"
}

func (h huber) Term(actual, ideal float64) float64 {
	d := ideal - actual
	if math.Abs(d) <= h.δ {
		return d
	}

	return h.δ * math.Copysign(1, d)
}
