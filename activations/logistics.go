package activations

import (
	"math"
)

// ****************************************
// Logistic
// ****************************************

type logistic int8

// Logistic returns the logistic (or sigmoid) function, which implements freeform.Activation. It is
// the only provided Activation that is Saturating, so it receives the flat spot constant during
// training.
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) TypeString() string {
	return "logistic"
}

func (t logistic) Value(sum float64) float64 {
	// the logistic function can be rephrased as:
	return 0.5 + 0.5*math.Tanh(0.5*sum)
}

func (t logistic) Deriv(sum, value float64) float64 {
	return value * (1 - value)
}

func (t logistic) Saturating() bool {
	return true
}

// ****************************************
// Tanh
// ****************************************

type tanh int8

// Tanh returns the hyperbolic tangent.
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) TypeString() string {
	return "tanh"
}

func (t tanh) Value(sum float64) float64 {
	return math.Tanh(sum)
}

func (t tanh) Deriv(sum, value float64) float64 {
	// it's cheaper to multiply it by itself than to use math.Pow()
	return 1 - (value * value)
}

// ****************************************
// Softsign
// ****************************************

type softsign int8

// Softsign (not to be confused with softplus) returns the Softsign activation function. It is
// similar in shape to Tanh and Logistic.
func Softsign() softsign {
	return softsign(0)
}

func (t softsign) TypeString() string {
	return "softsign"
}

func (t softsign) Value(sum float64) float64 {
	return sum / (math.Abs(sum) + 1)
}

func (t softsign) Deriv(sum, value float64) float64 {
	// 1 / (|sum| + 1)^2
	d := math.Abs(sum) + 1
	return 1 / (d * d)
}

// ****************************************
// Elliott
// ****************************************

type elliott float64

// Elliott returns the Elliott function, a cheap approximation of Logistic with outputs in (0, 1).
// s is the steepness; 1 is the usual choice.
func Elliott(s float64) elliott {
	return elliott(s)
}

func (t elliott) TypeString() string {
	return "elliott"
}

func (t elliott) Value(sum float64) float64 {
	s := float64(t) * sum
	return 0.5*s/(1+math.Abs(s)) + 0.5
}

func (t elliott) Deriv(sum, value float64) float64 {
	d := 1 + math.Abs(sum*float64(t))
	return float64(t) / (2 * d * d)
}
