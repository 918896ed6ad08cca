package freeform

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrRegisterNilReturn = Error{"Function return is nil"}
	ErrRegisterDuplicate = Error{"Name is already registered"}
	ErrNetNotFinalized   = Error{"Network has not been finalized"}
	ErrNetFinalized      = Error{"Network has already been finalized"}
	ErrNoOutputs         = Error{"Network has no outputs"}
	ErrForeignNeuron     = Error{"Neuron does not belong to this Network"}
	ErrNotAllocated      = Error{"Training buffers are not allocated"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ Arg string }

func (err NilArgError) Error() string {
	return err.Arg + " is nil"
}

// SizeMismatchError is returned when a slice given to the Network does not have the length that
// was expected of it.
type SizeMismatchError struct {
	Expected, Got int
	Of            string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch of %s: expected %d, got %d", err.Of, err.Expected, err.Got)
}

// InvalidArgError is returned when an argument is present but malformed, for example a training
// sequence that is too short to be trained on.
type InvalidArgError struct {
	Arg    string
	Reason string
}

func (err InvalidArgError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", err.Arg, err.Reason)
}
