package freeform

import (
	"github.com/pkg/errors"
)

// Neurons returns the list of all Neurons in the Network, sorted by ID such that Neurons()[n] has
// id=n. The slice that Neurons returns is a copy.
func (net *Network) Neurons() []*Neuron {
	ns := make([]*Neuron, len(net.neurons))
	copy(ns, net.neurons)
	return ns
}

// Connections returns the list of all Connections in the Network, sorted by ID. The slice is a
// copy.
func (net *Network) Connections() []*Connection {
	cs := make([]*Connection, len(net.conns))
	copy(cs, net.conns)
	return cs
}

// Inputs returns a copy of the input Neurons, in order.
func (net *Network) Inputs() []*Neuron {
	ns := make([]*Neuron, len(net.inputs))
	copy(ns, net.inputs)
	return ns
}

// Outputs returns a copy of the output Neurons, in order. It is empty before SetOutputs.
func (net *Network) Outputs() []*Neuron {
	ns := make([]*Neuron, len(net.outputs))
	copy(ns, net.outputs)
	return ns
}

// InputSize returns the number of input Neurons.
func (net *Network) InputSize() int {
	return len(net.inputs)
}

// OutputSize returns the number of output Neurons. If the Network has not been finalized yet,
// OutputSize will return -1.
func (net *Network) OutputSize() int {
	if net.stat < finalized {
		return -1
	}

	return len(net.outputs)
}

// Finalized returns whether SetOutputs has succeeded.
func (net *Network) Finalized() bool {
	return net.stat >= finalized
}

// HasRecurrent returns whether or not any Connection in the Network is recurrent.
func (net *Network) HasRecurrent() bool {
	return net.hasRecurrent
}

// NumWeights returns the number of Connections, which is also the number of weights.
func (net *Network) NumWeights() int {
	return len(net.conns)
}

// Weights returns a copy of the weights of every Connection, indexed by Connection id. Together
// with SetWeights, this allows returning to a known-good state after a failed iteration.
func (net *Network) Weights() []float64 {
	ws := make([]float64, len(net.conns))
	for i, c := range net.conns {
		ws[i] = c.weight
	}

	return ws
}

// SetWeights sets the weights of every Connection, indexed by Connection id. If the number of
// weights given is not equal to NumWeights, type SizeMismatchError is returned.
func (net *Network) SetWeights(ws []float64) error {
	if len(ws) != len(net.conns) {
		return SizeMismatchError{len(net.conns), len(ws), "weights"}
	}

	for i, c := range net.conns {
		c.weight = ws[i]
	}

	return nil
}

// Randomize sets all of the weights in the Network using init. Weights are set in groups by
// target Neuron, with the fan-in being the number of inbound Connections and the fan-out being the
// number of outbound Connections. If init is nil, the default Initializer is used; if there is no
// default either, type NilArgError is returned.
func (net *Network) Randomize(init Initializer) error {
	if init == nil {
		if init = DefaultInitializer(); init == nil {
			return NilArgError{"Initializer"}
		}
	}

	for _, n := range net.neurons {
		if len(n.inbound) == 0 {
			continue
		}

		ws := make([]float64, len(n.inbound))
		init.Set(len(n.inbound), len(n.outbound), ws)

		for i, c := range n.inbound {
			c.weight = ws[i]
		}
	}

	return nil
}

// check is shared by the methods that need a finalized Network
func (net *Network) check() error {
	if net.stat < finalized {
		return ErrNetNotFinalized
	}

	return nil
}

// Neuron returns the Neuron with the given id.
func (net *Network) Neuron(id int) (*Neuron, error) {
	if id < 0 || id >= len(net.neurons) {
		return nil, errors.Errorf("No Neuron with id %d (have %d)", id, len(net.neurons))
	}

	return net.neurons[id], nil
}
