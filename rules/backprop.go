package rules

import (
	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
	"github.com/sharnoff/freeform/hyperparams"
)

// Default values of the HyperParameters of Backprop
const (
	DefaultLearningRate float64 = 0.7
	DefaultMomentum     float64 = 0.3
)

type backprop struct {
	learningRate ff.HyperParameter
	momentum     ff.HyperParameter
}

// Backprop returns backpropagation with momentum, which implements freeform.LearningRule. For
// each weight:
//	delta = gradient * learning-rate + last delta * momentum
// The learning rate and momentum can be changed with LearningRate and Momentum.
func Backprop() *backprop {
	return &backprop{
		learningRate: hyperparams.Constant(DefaultLearningRate),
		momentum:     hyperparams.Constant(DefaultMomentum),
	}
}

// LearningRate sets the learning rate, returning the same LearningRule. It panics with type
// freeform.NilArgError if hp is nil.
func (b *backprop) LearningRate(hp ff.HyperParameter) *backprop {
	if hp == nil {
		panic(ff.NilArgError{Arg: "Learning rate"})
	}

	b.learningRate = hp
	return b
}

// Momentum sets the momentum, returning the same LearningRule. It panics with type
// freeform.NilArgError if hp is nil.
func (b *backprop) Momentum(hp ff.HyperParameter) *backprop {
	if hp == nil {
		panic(ff.NilArgError{Arg: "Momentum"})
	}

	b.momentum = hp
	return b
}

func (b *backprop) TypeString() string {
	return "backprop"
}

func (b *backprop) Init(buf *ff.Buffers) {}

func (b *backprop) Update(iter int, weights []float64, buf *ff.Buffers) error {
	if err := check(weights, buf); err != nil {
		return errors.Wrapf(err, "Can't run %s", b.TypeString())
	}

	lr := b.learningRate.Value(iter)
	m := b.momentum.Value(iter)

	for i := range weights {
		delta := buf.Gradients[i]*lr + buf.LastDeltas[i]*m
		buf.LastDeltas[i] = delta
		weights[i] += delta
		buf.Gradients[i] = 0
	}

	return nil
}

func check(weights []float64, buf *ff.Buffers) error {
	if !buf.Allocated() {
		return ff.ErrNotAllocated
	} else if buf.Len() != len(weights) {
		return ff.SizeMismatchError{Expected: buf.Len(), Got: len(weights), Of: "weights"}
	}

	return nil
}
