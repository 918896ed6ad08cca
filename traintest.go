package freeform

import (
	"github.com/pkg/errors"
)

// A wrapper for sending back the progress of the training or testing
type Result struct {
	// The iteration the result is being sent before
	Iteration int

	// Cost is the training error (for status updates) or the error on TestData (for tests)
	Cost float64

	// The fraction correct, as per IsCorrect() from TrainArgs. Status updates leave this at zero.
	// 0 → 1
	Correct float64

	// The result is either from a test or a status update
	IsTest bool
}

// TrainArgs is used as a proxy for the type of optional arguments that are available in other
// languages. Only RunCondition is required.
type TrainArgs struct {
	// RunCondition will be called before each iteration to determine if training should
	// continue, given the iteration and the training error of the previous iteration. Training
	// will stop if 'false' is returned.
	RunCondition func(iter int, lastErr float64) bool

	// SendStatus indicates whether or not to send back the training error. SendStatus can be left
	// nil to represent an unconditional false.
	//
	// 'true' will be ignored on iteration 0.
	SendStatus func(int) bool

	// TestData is the source of cross-validation data while training. This can be nil if
	// ShouldTest is also nil
	TestData IndexableSet

	// ShouldTest indicates whether or not testing should be done before the current iteration.
	ShouldTest func(int) bool

	// TestMode is the ErrorMode used when testing.
	TestMode ErrorMode

	// IsCorrect returns whether or not the network outputs are correct, given the ideal outputs.
	// In order, it is given: outputs; ideals.
	IsCorrect func([]float64, []float64) bool

	// Update is how testing and status updates are returned. If both ShouldTest and SendStatus
	// are nil, then Update can also be left nil.
	Update func(Result)
}

// Train runs iterations of t until args.RunCondition returns false. net should be the network
// being trained; it is used for testing.
//
// If an iteration fails, Train returns its error immediately. The iteration should be considered
// lost: the weights are left as they were when the error occurred.
func Train(t Iterative, net Computer, args TrainArgs) error {
	// handle error cases and set defaults
	{
		if t == nil {
			return NilArgError{"Iterative"}
		} else if args.RunCondition == nil {
			return errors.Errorf("RunCondition is nil")
		}

		if args.Update == nil {
			args.Update = func(r Result) {}
		}

		if args.TestData == nil {
			if args.ShouldTest != nil {
				return errors.Errorf("TestData is nil but ShouldTest is not")
			}

			args.ShouldTest = func(i int) bool { return false }
		} else if net == nil {
			return NilArgError{"Network to test"}
		} else if args.ShouldTest == nil {
			args.ShouldTest = func(i int) bool { return false }
		}

		if args.SendStatus == nil {
			args.SendStatus = func(i int) bool { return false }
		}

		if args.IsCorrect == nil {
			args.IsCorrect = func(a, b []float64) bool { return false }
		}
	}

	for {
		iter := t.Iter()

		if args.SendStatus(iter) && iter != 0 {
			args.Update(Result{
				Iteration: iter,
				Cost:      t.Error(),
				IsTest:    false,
			})
		}

		if args.ShouldTest(iter) {
			cost, correct, err := Test(net, args.TestData, args.TestMode, args.IsCorrect)
			if err != nil {
				return errors.Wrapf(err, "Testing on iteration %d failed", iter)
			}

			args.Update(Result{
				Iteration: iter,
				Cost:      cost,
				Correct:   correct,
				IsTest:    true,
			})
		}

		if !args.RunCondition(iter, t.Error()) {
			break
		}

		if err := t.Iteration(); err != nil {
			return errors.Wrapf(err, "Training failed on iteration %d", iter)
		}
	}

	return nil
}

// Test returns the error of net over the given data, measured with mode, and the fraction of
// samples for which isCorrect returned true. isCorrect may be nil, in which case the fraction
// will be zero.
//
// If net is a *Network with recurrent Connections and data is Sequential, the context of the
// Network is cleared at the start of each sequence.
func Test(net Computer, data IndexableSet, mode ErrorMode, isCorrect func([]float64, []float64) bool) (float64, float64, error) {
	if net == nil {
		return 0, 0, NilArgError{"Network"}
	} else if data == nil {
		return 0, 0, NilArgError{"Test data"}
	}

	seq, isSeq := data.(Sequential)
	ff, isFreeform := net.(*Network)

	ec := ErrorCalculation{Mode: mode}
	var correct float64

	for i := 0; i < data.Len(); i++ {
		p, err := data.Get(i)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get test sample %d", i)
		}

		if isSeq && isFreeform && seq.SequenceStart(i) {
			ff.ClearContext()
		}

		outs, err := net.Compute(p.Input)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get outputs with test sample %d", i)
		} else if len(outs) != len(p.Ideal) {
			return 0, 0, errors.Wrapf(SizeMismatchError{len(outs), len(p.Ideal), "ideals"}, "Test sample %d", i)
		}

		ec.Update(outs, p.Ideal, p.Significance)
		if isCorrect != nil && isCorrect(outs, p.Ideal) {
			correct++
		}
	}

	if data.Len() != 0 {
		correct /= float64(data.Len())
	}

	return ec.Calculate(), correct, nil
}
