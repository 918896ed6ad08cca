// Package initializers provides the Initializers used to set the starting weights of networks.
// Importing it sets the default Initializer to Random(Uniform()).
package initializers

import (
	"math"

	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
)

// default values, because 'default' is a keyword
var defaultValue map[string]float64

func init() {
	defaultValue = map[string]float64{
		"uniform-lower": -1,
		"uniform-upper": 1,
		"normal-mean":   0,
		"normal-sd":     1,
		"varscl-factor": 1,
	}

	ff.SetDefaultInitializer(Random(Uniform()))
}

// SetDefault sets the default values used by the constructors in this package. The values that
// can be set are: "uniform-lower", "uniform-upper", "normal-mean", "normal-sd", and
// "varscl-factor".
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an error
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}
