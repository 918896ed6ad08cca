package layered

import (
	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
)

// Trainer trains a layered Network in full batches, using a GradientCalculator for the gradients
// and any LearningRule for the updates. It is an implementation of freeform.Iterative.
type Trainer struct {
	net  *Network
	rule ff.LearningRule
	conf ff.Config

	buf  *ff.Buffers
	calc *GradientCalculator

	iter    int
	lastErr float64
}

// NewTrainer returns a Trainer for net on set. If rule is nil, the default LearningRule is used.
func NewTrainer(net *Network, set ff.IndexableSet, rule ff.LearningRule, conf ff.Config) (*Trainer, error) {
	if rule == nil {
		if rule = ff.DefaultLearningRule(); rule == nil {
			return nil, ff.NilArgError{Arg: "LearningRule"}
		}
	}

	calc, err := NewGradientCalculator(net, set, conf)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't make Trainer")
	}

	buf := ff.NewBuffers(net.WeightCount())
	rule.Init(buf)

	conf.Logf("training on %d records with %d workers", set.Len(), calc.Workers())

	return &Trainer{
		net:  net,
		rule: rule,
		conf: conf,
		buf:  buf,
		calc: calc,
	}, nil
}

// Iteration is the implementation of freeform.Iterative
func (t *Trainer) Iteration() error {
	if !t.buf.Allocated() {
		return ff.ErrNotAllocated
	}

	e, err := t.calc.Calculate(t.buf.Gradients)
	if err != nil {
		return errors.Wrapf(err, "Iteration %d failed", t.iter)
	}

	if err = t.rule.Update(t.iter, t.net.weights, t.buf); err != nil {
		return errors.Wrapf(err, "Iteration %d failed, %s update failed", t.iter, t.rule.TypeString())
	}

	t.lastErr = e
	t.conf.Logf("iteration %d: %s %v", t.iter, t.conf.ErrorMode, t.lastErr)
	t.iter++
	return nil
}

// Error is the implementation of freeform.Iterative
func (t *Trainer) Error() float64 {
	return t.lastErr
}

// Iter is the implementation of freeform.Iterative
func (t *Trainer) Iter() int {
	return t.iter
}

// Buffers returns the training state of the Trainer.
func (t *Trainer) Buffers() *ff.Buffers {
	return t.buf
}

// Workers returns the number of goroutines gradients are calculated with.
func (t *Trainer) Workers() int {
	return t.calc.Workers()
}

// Finish releases the training Buffers.
func (t *Trainer) Finish() {
	t.buf.Clear()
}
