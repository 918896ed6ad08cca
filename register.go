package freeform

import (
	"sort"

	"github.com/pkg/errors"
)

// The registries allow Activations, LearningRules, HyperParameters, and ErrorFunctions to be
// referred to by name, for example from command-line flags. The subpackages fill them in their
// init functions.
var (
	activations     = make(map[string]func() Activation)
	learningRules   = make(map[string]func() LearningRule)
	hyperParameters = make(map[string]func() HyperParameter)
	errorFunctions  = make(map[string]func() ErrorFunction)

	defaultRule func() LearningRule
	defaultInit Initializer
)

// RegisterActivation allows the Activation returned by f to be retrieved by GetActivation. name
// should be the TypeString of that Activation.
func RegisterActivation(name string, f func() Activation) error {
	if _, ok := activations[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register Activation %q", name)
	} else if f == nil || f() == nil {
		return errors.Wrapf(ErrRegisterNilReturn, "Can't register Activation %q", name)
	}

	activations[name] = f
	return nil
}

// GetActivation returns a new instance of the Activation registered under name.
func GetActivation(name string) (Activation, error) {
	f, ok := activations[name]
	if !ok {
		return nil, errors.Errorf("No Activation registered as %q (have %v)", name, keys(activations))
	}

	return f(), nil
}

// RegisterLearningRule allows the LearningRule returned by f to be retrieved by GetLearningRule.
func RegisterLearningRule(name string, f func() LearningRule) error {
	if _, ok := learningRules[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register LearningRule %q", name)
	} else if f == nil || f() == nil {
		return errors.Wrapf(ErrRegisterNilReturn, "Can't register LearningRule %q", name)
	}

	learningRules[name] = f
	return nil
}

// GetLearningRule returns a new instance of the LearningRule registered under name.
func GetLearningRule(name string) (LearningRule, error) {
	f, ok := learningRules[name]
	if !ok {
		return nil, errors.Errorf("No LearningRule registered as %q (have %v)", name, keys(learningRules))
	}

	return f(), nil
}

// RegisterHyperParameter allows the HyperParameter returned by f to be retrieved by
// GetHyperParameter.
func RegisterHyperParameter(name string, f func() HyperParameter) error {
	if _, ok := hyperParameters[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register HyperParameter %q", name)
	} else if f == nil || f() == nil {
		return errors.Wrapf(ErrRegisterNilReturn, "Can't register HyperParameter %q", name)
	}

	hyperParameters[name] = f
	return nil
}

// GetHyperParameter returns a new instance of the HyperParameter registered under name.
func GetHyperParameter(name string) (HyperParameter, error) {
	f, ok := hyperParameters[name]
	if !ok {
		return nil, errors.Errorf("No HyperParameter registered as %q (have %v)", name, keys(hyperParameters))
	}

	return f(), nil
}

// RegisterErrorFunction allows the ErrorFunction returned by f to be retrieved by
// GetErrorFunction.
func RegisterErrorFunction(name string, f func() ErrorFunction) error {
	if _, ok := errorFunctions[name]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register ErrorFunction %q", name)
	} else if f == nil || f() == nil {
		return errors.Wrapf(ErrRegisterNilReturn, "Can't register ErrorFunction %q", name)
	}

	errorFunctions[name] = f
	return nil
}

// GetErrorFunction returns a new instance of the ErrorFunction registered under name.
func GetErrorFunction(name string) (ErrorFunction, error) {
	f, ok := errorFunctions[name]
	if !ok {
		return nil, errors.Errorf("No ErrorFunction registered as %q (have %v)", name, keys(errorFunctions))
	}

	return f(), nil
}

// SetDefaultLearningRule sets the LearningRule that DefaultLearningRule returns. It panics with
// type NilArgError if f is nil.
func SetDefaultLearningRule(f func() LearningRule) {
	if f == nil {
		panic(NilArgError{"Default LearningRule"})
	}

	defaultRule = f
}

// DefaultLearningRule returns a new instance of the default LearningRule, or nil if none has been
// set. Importing the subpackage "rules" sets it.
func DefaultLearningRule() LearningRule {
	if defaultRule == nil {
		return nil
	}

	return defaultRule()
}

// SetDefaultInitializer sets the Initializer used by Randomize when given nil. It panics with type
// NilArgError if init is nil.
func SetDefaultInitializer(init Initializer) {
	if init == nil {
		panic(NilArgError{"Default Initializer"})
	}

	defaultInit = init
}

// DefaultInitializer returns the Initializer set by SetDefaultInitializer, which may be nil.
func DefaultInitializer() Initializer {
	return defaultInit
}

func keys(m interface{}) []string {
	var ks []string
	switch m := m.(type) {
	case map[string]func() Activation:
		for k := range m {
			ks = append(ks, k)
		}
	case map[string]func() LearningRule:
		for k := range m {
			ks = append(ks, k)
		}
	case map[string]func() HyperParameter:
		for k := range m {
			ks = append(ks, k)
		}
	case map[string]func() ErrorFunction:
		for k := range m {
			ks = append(ks, k)
		}
	}

	sort.Strings(ks)
	return ks
}
