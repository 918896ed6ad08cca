package costfuncs

import (
	"math"
)

type linear struct{}

// Linear returns the ErrorFunction of the squared error, which gives ideal - actual. It is the
// same as leaving Config.ErrorFunction nil.
func Linear() linear {
	return linear{}
}

// MSE is a proxy for Linear
func MSE() linear {
	return Linear()
}

func (l linear) TypeString() string {
	return "linear"
}

func (l linear) Term(actual, ideal float64) float64 {
	return ideal - actual
}

type abs struct{}

// Abs returns the ErrorFunction of the absolute error, which only gives the sign of ideal - actual.
func Abs() abs {
	return abs{}
}

// L1 is a proxy for Abs
func L1() abs {
	return Abs()
}

func (a abs) TypeString() string {
	return "abs"
}

func (a abs) Term(actual, ideal float64) float64 {
	if actual == ideal {
		return 0
	}

	return math.Copysign(1, ideal-actual)
}
