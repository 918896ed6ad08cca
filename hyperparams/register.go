// Package hyperparams provides schedules for the values that LearningRules use, like learning
// rates and momentum. Importing it registers each of them by its TypeString.
package hyperparams

import (
	ff "github.com/sharnoff/freeform"
)

func init() {
	list := map[string]func() ff.HyperParameter{
		// the values are just placeholders
		Constant(0).TypeString():    func() ff.HyperParameter { return Constant(0) },
		Step(0).TypeString():        func() ff.HyperParameter { return Step(0) },
		Decay(1, 1, 1).TypeString(): func() ff.HyperParameter { return Decay(1, 1, 1) },
	}

	for s, f := range list {
		err := ff.RegisterHyperParameter(s, f)
		if err != nil {
			panic(err.Error())
		}
	}
}
