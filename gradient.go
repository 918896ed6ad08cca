package freeform

import (
	"github.com/pkg/errors"
)

// GradientCalculator accumulates the gradients of a Network's weights into a set of Buffers.
//
// For each Pair, the error term of each output is conf.ErrorTerm(actual, ideal) * significance,
// which is (ideal - actual) * significance unless the Config sets an ErrorFunction. Deltas are then
// propagated backwards through the Network in reverse forward order:
//	delta[n] = (error term of n + sum over outbound c of weight[c] * delta[target of c]) * f'(n)
// where f'(n) includes the flat spot constant if the Config asks for it. Finally, every Connection
// adds (value it carried) * delta[target] to its gradient.
//
// Recurrent Connections receive gradients like any other, but deltas are not propagated back
// through them: the previous time step is treated as a fixed input.
type GradientCalculator struct {
	net  *Network
	buf  *Buffers
	conf Config

	// indexed by Neuron id
	deltas []float64
	flat   []float64
}

// NewGradientCalculator returns a GradientCalculator that adds to the gradients in buf. The
// Network must be finalized, and buf must be allocated for the Network's weights.
func NewGradientCalculator(net *Network, buf *Buffers, conf Config) (*GradientCalculator, error) {
	if net == nil {
		return nil, NilArgError{"Network"}
	} else if err := net.check(); err != nil {
		return nil, err
	} else if !buf.Allocated() {
		return nil, ErrNotAllocated
	} else if buf.Len() != net.NumWeights() {
		return nil, SizeMismatchError{net.NumWeights(), buf.Len(), "buffers"}
	} else if err := conf.Validate(); err != nil {
		return nil, err
	}

	g := &GradientCalculator{
		net:    net,
		buf:    buf,
		conf:   conf,
		deltas: make([]float64, len(net.neurons)),
		flat:   make([]float64, len(net.neurons)),
	}

	for _, n := range net.order {
		g.flat[n.id] = conf.FlatSpotFor(n.act)
	}

	return g, nil
}

// Pair runs the Network on a single Pair and adds the resulting gradients to the Buffers. The
// error of the outputs is added to ec, if it is not nil.
func (g *GradientCalculator) Pair(p Pair, ec *ErrorCalculation) error {
	net := g.net
	if !g.buf.Allocated() {
		return ErrNotAllocated
	} else if len(p.Input) != len(net.inputs) {
		return SizeMismatchError{len(net.inputs), len(p.Input), "inputs"}
	} else if len(p.Ideal) != len(net.outputs) {
		return SizeMismatchError{len(net.outputs), len(p.Ideal), "ideals"}
	}

	net.evaluate(p.Input)

	if ec != nil {
		ec.Update(net.outputValues(), p.Ideal, p.Significance)
	}

	for i := range g.deltas {
		g.deltas[i] = 0
	}

	for i := len(net.order) - 1; i >= 0; i-- {
		n := net.order[i]

		var sum float64
		if n.outputIndex >= 0 {
			sum = g.conf.ErrorTerm(n.activation, p.Ideal[n.outputIndex]) * p.Significance
		}

		for _, c := range n.outbound {
			if !c.recurrent {
				sum += c.weight * g.deltas[c.target.id]
			}
		}

		g.deltas[n.id] = sum * (n.act.Deriv(n.sum, n.activation) + g.flat[n.id])
	}

	grads := g.buf.Gradients
	for _, c := range net.conns {
		grads[c.id] += net.sourceValue(c) * g.deltas[c.target.id]
	}

	return nil
}

// Batch accumulates the gradients over every Pair in the set. If the set is Sequential, the
// context of the Network is cleared at the start of each sequence.
func (g *GradientCalculator) Batch(set IndexableSet, ec *ErrorCalculation) error {
	if set == nil {
		return NilArgError{"Training set"}
	}

	seq, isSeq := set.(Sequential)
	for i := 0; i < set.Len(); i++ {
		p, err := set.Get(i)
		if err != nil {
			return errors.Wrapf(err, "Failed to get training Pair %d", i)
		}

		if isSeq && seq.SequenceStart(i) {
			g.net.ClearContext()
		}

		if err = g.Pair(p, ec); err != nil {
			return errors.Wrapf(err, "Failed to calculate gradients for training Pair %d", i)
		}
	}

	return nil
}

// Delta returns the delta of the given Neuron as of the last Pair. Input and bias Neurons always
// have a delta of zero.
func (g *GradientCalculator) Delta(n *Neuron) float64 {
	return g.deltas[n.id]
}
