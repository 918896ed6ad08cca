package freeform

import (
	"math"

	"github.com/pkg/errors"
)

// ErrorMode selects how the accumulated error of a training set is reduced to a single value.
type ErrorMode int8

const (
	// MSE is the mean squared error
	MSE ErrorMode = iota
	// RMS is the root of the mean squared error
	RMS
	// SSE is half of the sum of squared errors
	SSE
)

func (m ErrorMode) String() string {
	switch m {
	case MSE:
		return "mse"
	case RMS:
		return "rms"
	case SSE:
		return "sse"
	default:
		return ""
	}
}

// ParseErrorMode returns the ErrorMode whose String is s.
func ParseErrorMode(s string) (ErrorMode, error) {
	for _, m := range []ErrorMode{MSE, RMS, SSE} {
		if m.String() == s {
			return m, nil
		}
	}

	return 0, errors.Errorf("Unknown error mode %q", s)
}

// ErrorCalculation accumulates the error of a network over a set of samples. The mode is carried
// by each ErrorCalculation, so separate training runs never influence each other.
//
// The zero value is an empty MSE accumulator.
type ErrorCalculation struct {
	Mode ErrorMode

	globalError float64
	setSize     int
}

// Update adds the error between the actual and ideal outputs, scaled by significance. It assumes
// len(actual) == len(ideal).
func (ec *ErrorCalculation) Update(actual, ideal []float64, significance float64) {
	for i := range actual {
		delta := (ideal[i] - actual[i]) * significance
		ec.globalError += delta * delta
	}

	ec.setSize += len(ideal)
}

// Merge adds the accumulated error of other into ec. The mode of ec is kept.
func (ec *ErrorCalculation) Merge(other *ErrorCalculation) {
	ec.globalError += other.globalError
	ec.setSize += other.setSize
}

// Calculate returns the error accumulated so far. If nothing has been accumulated, it returns 0.
func (ec *ErrorCalculation) Calculate() float64 {
	if ec.setSize == 0 {
		return 0
	}

	switch ec.Mode {
	case RMS:
		return math.Sqrt(ec.globalError / float64(ec.setSize))
	case SSE:
		return ec.globalError / 2
	default:
		return ec.globalError / float64(ec.setSize)
	}
}

// Reset clears the accumulated error, keeping the mode.
func (ec *ErrorCalculation) Reset() {
	ec.globalError = 0
	ec.setSize = 0
}
