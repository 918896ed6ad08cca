// Package rules provides the LearningRules that turn accumulated gradients into weight changes.
// Importing it registers each of them by its TypeString and makes Resilient the default.
package rules

import ff "github.com/sharnoff/freeform"

func init() {
	list := map[string]func() ff.LearningRule{
		"backprop": func() ff.LearningRule { return Backprop() },
		"rprop":    func() ff.LearningRule { return Resilient() },
	}

	for s, f := range list {
		err := ff.RegisterLearningRule(s, f)
		if err != nil {
			panic(err.Error())
		}
	}

	ff.SetDefaultLearningRule(func() ff.LearningRule { return Resilient() })
}
