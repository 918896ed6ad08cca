// Package costfuncs provides the ErrorFunctions that turn the difference between the outputs of a
// network and their ideal values into the error terms that training starts from. Importing it
// registers each of them by its TypeString.
package costfuncs

import (
	ff "github.com/sharnoff/freeform"
)

func init() {
	list := []func() ff.ErrorFunction{
		func() ff.ErrorFunction { return Linear() },
		func() ff.ErrorFunction { return CrossEntropy() },
		func() ff.ErrorFunction { return Huber(1) },
		func() ff.ErrorFunction { return Abs() },
	}

	for _, f := range list {
		if err := ff.RegisterErrorFunction(f().TypeString(), f); err != nil {
			panic(err)
		}
	}
}
