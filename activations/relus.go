// relus.go contains all activation functions that are derivative of relu:
// * ReLU
// * Leaky ReLU
// * ELU
// * Softplus (because it's similar)

package activations

import (
	"math"
)

// ****************************************
// ReLU
// ****************************************

type relu int8

// ReLU returns the standard rectified linear unit, which implements freeform.Activation.
func ReLU() relu {
	return relu(0)
}

func (t relu) TypeString() string {
	return "relu"
}

func (t relu) Value(sum float64) float64 {
	return math.Max(sum, 0)
}

func (t relu) Deriv(sum, value float64) float64 {
	if sum > 0 {
		return 1
	}
	return 0
}

// ****************************************
// Leaky ReLU
// ****************************************

type lrelu float64

// LeakyReLU returns a standard 'leaky ReLU', where the leaky factor is given by alpha.
func LeakyReLU(alpha float64) lrelu {
	return lrelu(alpha)
}

func (t lrelu) TypeString() string {
	return "leaky-relu"
}

func (t lrelu) Value(sum float64) float64 {
	if sum < 0 {
		return float64(t) * sum
	}
	return sum
}

func (t lrelu) Deriv(sum, value float64) float64 {
	if sum < 0 {
		return float64(t)
	}
	return 1
}

// ****************************************
// ELU
// ****************************************

type elu int8

// ELU returns the exponential linear unit, with an alpha of 1.
func ELU() elu {
	return elu(0)
}

func (t elu) TypeString() string {
	return "elu"
}

func (t elu) Value(sum float64) float64 {
	if sum >= 0 {
		return sum
	}
	return math.Exp(sum) - 1
}

func (t elu) Deriv(sum, value float64) float64 {
	if sum < 0 {
		// e^x = value + 1
		return value + 1
	}
	return 1
}

// ****************************************
// Softplus
// ****************************************

type softplus int8

// Softplus is a smooth approximation of ReLU that approaches 0 as inputs tend towards negative
// infinity.
func Softplus() softplus {
	return softplus(0)
}

func (t softplus) TypeString() string {
	return "softplus"
}

func (t softplus) Value(sum float64) float64 {
	return math.Log(1 + math.Exp(sum))
}

func (t softplus) Deriv(sum, value float64) float64 {
	// 1 / (1 + e^-x)
	return 1.0 / (1 + math.Exp(-sum))
}
