package freeform

import (
	"fmt"
	"io/ioutil"
	"log"
	"math"
)

// DefaultFlatSpot is the constant added to the derivative of saturating activations when
// FixFlatSpot is enabled.
const DefaultFlatSpot float64 = 0.1

// Config configures a training session
type Config struct {
	// Threads is the number of goroutines used to calculate gradients of layered networks. Zero
	// picks a number based on the number of CPUs. The graph-based Network always uses one.
	Threads int

	FixFlatSpot bool    // add FlatSpot to the derivative of saturating activations
	FlatSpot    float64 // the constant added if FixFlatSpot is true

	ErrorMode ErrorMode

	// ErrorFunction gives the error term of each output. If nil, it is ideal - actual.
	ErrorFunction ErrorFunction

	// Logger receives a line for every completed iteration. It may be nil, in which case nothing
	// is logged.
	Logger *log.Logger
}

// DefaultConfig returns the Config used when none is given.
func DefaultConfig() Config {
	return Config{
		Threads:     0,
		FixFlatSpot: true,
		FlatSpot:    DefaultFlatSpot,
		ErrorMode:   MSE,
		Logger:      log.New(ioutil.Discard, "", 0),
	}
}

// Validate returns type InvalidArgError if the Config cannot be used.
func (conf Config) Validate() error {
	if conf.Threads < 0 {
		return InvalidArgError{"Threads", fmt.Sprintf("must be >= 0 (%d)", conf.Threads)}
	} else if math.IsNaN(conf.FlatSpot) || math.IsInf(conf.FlatSpot, 0) || conf.FlatSpot < 0 {
		return InvalidArgError{"FlatSpot", fmt.Sprintf("must be finite and >= 0 (%v)", conf.FlatSpot)}
	} else if conf.ErrorMode.String() == "" {
		return InvalidArgError{"ErrorMode", fmt.Sprintf("unknown mode %d", conf.ErrorMode)}
	}

	return nil
}

// FlatSpotFor returns the constant that should be added to the derivative of act.
func (conf Config) FlatSpotFor(act Activation) float64 {
	if !conf.FixFlatSpot {
		return 0
	}

	if s, ok := act.(Saturating); ok && s.Saturating() {
		return conf.FlatSpot
	}

	return 0
}

// ErrorTerm returns the error term of an output with the given actual and ideal values, using
// the ErrorFunction if there is one.
func (conf Config) ErrorTerm(actual, ideal float64) float64 {
	if conf.ErrorFunction == nil {
		return ideal - actual
	}

	return conf.ErrorFunction.Term(actual, ideal)
}

// Logf prints to the Logger, if there is one.
func (conf Config) Logf(format string, args ...interface{}) {
	if conf.Logger != nil {
		conf.Logger.Printf(format, args...)
	}
}
