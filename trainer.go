package freeform

import (
	"github.com/pkg/errors"
)

// Trainer trains a Network on an IndexableSet in full batches: each Iteration accumulates the
// gradients over the entire set before the LearningRule changes any weight.
type Trainer struct {
	net  *Network
	set  IndexableSet
	rule LearningRule
	conf Config

	buf  *Buffers
	calc *GradientCalculator

	iter    int
	lastErr float64
}

// NewTrainer allocates the Buffers for training net on set with the given LearningRule. If rule is
// nil, the default LearningRule is used.
func NewTrainer(net *Network, set IndexableSet, rule LearningRule, conf Config) (*Trainer, error) {
	if net == nil {
		return nil, NilArgError{"Network"}
	} else if set == nil {
		return nil, NilArgError{"Training set"}
	} else if rule == nil {
		if rule = DefaultLearningRule(); rule == nil {
			return nil, NilArgError{"LearningRule"}
		}
	}

	if err := net.check(); err != nil {
		return nil, errors.Wrapf(err, "Can't make Trainer")
	} else if set.Len() == 0 {
		return nil, InvalidArgError{"training set", "has no Pairs"}
	}

	buf := NewBuffers(net.NumWeights())
	rule.Init(buf)

	calc, err := NewGradientCalculator(net, buf, conf)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't make Trainer")
	}

	return &Trainer{
		net:  net,
		set:  set,
		rule: rule,
		conf: conf,
		buf:  buf,
		calc: calc,
	}, nil
}

// Iteration is the implementation of Iterative. If it returns an error, the weights of the Network
// may have been partially changed; they should be restored from a copy made with Weights before
// training continues.
func (t *Trainer) Iteration() error {
	if !t.buf.Allocated() {
		return ErrNotAllocated
	}

	ec := ErrorCalculation{Mode: t.conf.ErrorMode}
	if err := t.calc.Batch(t.set, &ec); err != nil {
		return errors.Wrapf(err, "Iteration %d failed", t.iter)
	}

	ws := t.net.Weights()
	if err := t.rule.Update(t.iter, ws, t.buf); err != nil {
		return errors.Wrapf(err, "Iteration %d failed, %s update failed", t.iter, t.rule.TypeString())
	}

	if err := t.net.SetWeights(ws); err != nil {
		return errors.Wrapf(err, "Iteration %d failed", t.iter)
	}

	t.lastErr = ec.Calculate()
	t.conf.Logf("iteration %d: %s %v", t.iter, t.conf.ErrorMode, t.lastErr)
	t.iter++
	return nil
}

// Error is the implementation of Iterative
func (t *Trainer) Error() float64 {
	return t.lastErr
}

// Iter is the implementation of Iterative
func (t *Trainer) Iter() int {
	return t.iter
}

// Buffers returns the training state of the Trainer. It is exposed for inspection; modifying it
// changes the course of training.
func (t *Trainer) Buffers() *Buffers {
	return t.buf
}

// Finish releases the training Buffers. Further calls to Iteration return ErrNotAllocated. The
// Network can still be used.
func (t *Trainer) Finish() {
	t.buf.Clear()
}
