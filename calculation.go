package freeform

import (
	"github.com/pkg/errors"
)

// Compute sets the inputs of the Network, evaluates every Neuron, and returns a copy of the output
// values. There are several error conditions:
//	(0) If the Network has not been finalized: ErrNetNotFinalized,
//	(1) If the number of inputs doesn't match InputSize(): type SizeMismatchError.
//
// Recurrent Connections read the activation their source had before this call, so for a Network
// with recurrent Connections, consecutive calls carry state from one to the next. Without them,
// Compute is deterministic.
func (net *Network) Compute(inputs []float64) ([]float64, error) {
	if err := net.check(); err != nil {
		return nil, err
	} else if len(inputs) != len(net.inputs) {
		return nil, SizeMismatchError{len(net.inputs), len(inputs), "inputs"}
	}

	net.evaluate(inputs)
	return net.outputValues(), nil
}

// evaluate assumes that the Network is finalized and that the inputs are the right size
func (net *Network) evaluate(inputs []float64) {
	if net.hasRecurrent {
		for i, n := range net.neurons {
			net.prev[i] = n.activation
		}
	}

	for i, in := range net.inputs {
		in.activation = inputs[i]
	}

	for _, n := range net.order {
		var sum float64
		for _, c := range n.inbound {
			sum += c.weight * net.sourceValue(c)
		}

		n.sum = sum
		n.activation = n.act.Value(sum)
	}
}

// sourceValue returns the value that the Connection carries into its target
func (net *Network) sourceValue(c *Connection) float64 {
	if c.recurrent {
		return net.prev[c.source.id]
	}

	return c.source.activation
}

func (net *Network) outputValues() []float64 {
	outs := make([]float64, len(net.outputs))
	for i, out := range net.outputs {
		outs[i] = out.activation
	}

	return outs
}

// ClearContext resets the stored activations of all computed Neurons to zero, so that the next
// call to Compute is not affected by previous ones. This should be done at the start of each
// sequence given to a recurrent Network.
func (net *Network) ClearContext() {
	for _, n := range net.neurons {
		if n.kind == computed {
			n.activation = 0
			n.sum = 0
		}
	}

	for i := range net.prev {
		net.prev[i] = 0
	}
}

// CurrentOutputs returns a copy of the output values as of the last call to Compute.
func (net *Network) CurrentOutputs() ([]float64, error) {
	if err := net.check(); err != nil {
		return nil, errors.Wrapf(err, "Can't get current outputs")
	}

	return net.outputValues(), nil
}
