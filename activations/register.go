// Package activations provides the Activations used by the Neurons of freeform Networks and by the
// layers of layered networks. Importing it registers each of them by its TypeString.
package activations

import (
	ff "github.com/sharnoff/freeform"
)

func init() {
	list := []func() ff.Activation{
		func() ff.Activation { return Logistic() },
		func() ff.Activation { return Tanh() },
		func() ff.Activation { return Softsign() },
		func() ff.Activation { return Elliott(1) },
		func() ff.Activation { return Identity() },
		func() ff.Activation { return ReLU() },
		func() ff.Activation { return LeakyReLU(0.01) },
		func() ff.Activation { return ELU() },
		func() ff.Activation { return Softplus() },
	}

	for _, f := range list {
		if err := ff.RegisterActivation(f().TypeString(), f); err != nil {
			panic(err)
		}
	}
}
