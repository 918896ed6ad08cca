package freeform

import (
	"github.com/pkg/errors"
)

func (net *Network) newNeuron(name string, kind neuronKind) (*Neuron, error) {
	if net.stat >= finalized {
		return nil, ErrNetFinalized
	}

	n := &Neuron{
		name:        name,
		id:          len(net.neurons),
		host:        net,
		kind:        kind,
		outputIndex: -1,
	}

	net.neurons = append(net.neurons, n)
	return n, nil
}

// AddInput adds an input Neuron to the Network. Inputs to the Network are assigned to input
// Neurons in the order they were added. name may be empty.
func (net *Network) AddInput(name string) (*Neuron, error) {
	n, err := net.newNeuron(name, input)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't add input %q", name)
	}

	net.inputs = append(net.inputs, n)
	return n, nil
}

// AddBias adds a bias Neuron, which has no inbound Connections and always has the given
// activation.
func (net *Network) AddBias(name string, activation float64) (*Neuron, error) {
	n, err := net.newNeuron(name, bias)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't add bias %q", name)
	}

	n.activation = activation
	return n, nil
}

// AddNeuron adds a Neuron that applies act to the weighted sum of its inbound Connections. If act
// is nil, AddNeuron will return type NilArgError.
func (net *Network) AddNeuron(name string, act Activation) (*Neuron, error) {
	if act == nil {
		return nil, NilArgError{"Activation"}
	}

	n, err := net.newNeuron(name, computed)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't add Neuron %q", name)
	}

	n.act = act
	return n, nil
}

// Connect adds a feed-forward Connection from one Neuron to another. The target may not be an
// input or bias Neuron.
func (net *Network) Connect(from, to *Neuron, weight float64) (*Connection, error) {
	return net.connect(from, to, weight, false)
}

// ConnectRecurrent adds a recurrent Connection, which carries the activation that its source had
// before the current call to Compute. Recurrent Connections may form loops; they are the only
// Connections that may.
func (net *Network) ConnectRecurrent(from, to *Neuron, weight float64) (*Connection, error) {
	return net.connect(from, to, weight, true)
}

func (net *Network) connect(from, to *Neuron, weight float64, recurrent bool) (*Connection, error) {
	if net.stat >= finalized {
		return nil, ErrNetFinalized
	} else if from == nil {
		return nil, NilArgError{"Source Neuron"}
	} else if to == nil {
		return nil, NilArgError{"Target Neuron"}
	} else if from.host != net || to.host != net {
		return nil, errors.Wrapf(ErrForeignNeuron, "Can't connect %v to %v", from, to)
	} else if to.kind != computed {
		return nil, errors.Errorf("Can't connect %v to %v, target has no Activation", from, to)
	} else if from == to && !recurrent {
		return nil, errors.Errorf("Can't connect %v to itself without recurrence", from)
	}

	c := &Connection{
		id:        len(net.conns),
		source:    from,
		target:    to,
		weight:    weight,
		recurrent: recurrent,
	}

	from.outbound = append(from.outbound, c)
	to.inbound = append(to.inbound, c)
	net.conns = append(net.conns, c)

	if recurrent {
		net.hasRecurrent = true
	}

	return c, nil
}

// SetOutputs finalizes the structure of the Network, with the given Neurons as its outputs, in
// order.
//
// There are several requirements:
//	(0) The Network must have at least one input,
//	(1) No outputs can be inputs or bias Neurons, and none may be given twice,
//	(2) All Neurons must affect the outputs,
//	(3) Any loop must contain a recurrent Connection.
//
// If an error is returned, the Network has remained unchanged.
func (net *Network) SetOutputs(outputs ...*Neuron) error {
	if net.stat >= finalized {
		return ErrNetFinalized
	} else if len(outputs) == 0 {
		return ErrNoOutputs
	} else if len(net.inputs) == 0 {
		return errors.Errorf("Can't set outputs of network, network has no inputs")
	}

	for i, out := range outputs {
		if out == nil {
			return errors.Errorf("Can't set outputs of network, output Neuron #%d is nil", i)
		} else if out.host != net {
			return errors.Wrapf(ErrForeignNeuron, "Can't set outputs of network, output Neuron #%d (%v)", i, out)
		} else if out.kind != computed {
			return errors.Errorf("Can't set outputs of network, output Neuron #%d (%v) has no Activation", i, out)
		}

		// check that there are no duplicates
		for o := i + 1; o < len(outputs); o++ {
			if out == outputs[o] {
				return errors.Errorf("Can't set outputs of network, output #%d (%v) is also #%d", i, out, o)
			}
		}
	}

	if err := net.checkOutputs(outputs); err != nil {
		return errors.Wrapf(err, "Can't set outputs of network")
	}

	order, err := net.forwardOrder()
	if err != nil {
		return errors.Wrapf(err, "Can't set outputs of network")
	}

	for i, out := range outputs {
		out.outputIndex = i
	}

	net.outputs = make([]*Neuron, len(outputs))
	copy(net.outputs, outputs)
	net.order = order
	net.prev = make([]float64, len(net.neurons))
	net.stat = finalized

	return nil
}

// checkOutputs checks that all Neurons affect the outputs of the network, walking backwards from
// the outputs through all inbound Connections.
func (net *Network) checkOutputs(outputs []*Neuron) error {
	marked := make([]bool, len(net.neurons))
	queue := make([]*Neuron, 0, len(net.neurons))

	for _, out := range outputs {
		marked[out.id] = true
		queue = append(queue, out)
	}

	for len(queue) != 0 {
		n := queue[0]
		queue = queue[1:]

		for _, c := range n.inbound {
			if !marked[c.source.id] {
				marked[c.source.id] = true
				queue = append(queue, c.source)
			}
		}
	}

	for _, n := range net.neurons {
		if !marked[n.id] {
			return errors.Errorf("Neuron %v does not affect Network outputs", n)
		}
	}

	return nil
}

// forwardOrder returns the computed Neurons sorted so that the source of every non-recurrent
// Connection comes before its target. The worklist is first-in first-out and seeded in id order,
// so the result depends only on the structure of the Network.
func (net *Network) forwardOrder() ([]*Neuron, error) {
	pending := make([]int, len(net.neurons))
	var ready []*Neuron

	for _, n := range net.neurons {
		for _, c := range n.inbound {
			if !c.recurrent {
				pending[n.id]++
			}
		}

		if pending[n.id] == 0 {
			ready = append(ready, n)
		}
	}

	order := make([]*Neuron, 0, len(net.neurons))
	visited := 0
	for len(ready) != 0 {
		n := ready[0]
		ready = ready[1:]
		visited++

		if n.kind == computed {
			order = append(order, n)
		}

		for _, c := range n.outbound {
			if c.recurrent {
				continue
			}

			pending[c.target.id]--
			if pending[c.target.id] == 0 {
				ready = append(ready, c.target)
			}
		}
	}

	if visited != len(net.neurons) {
		for _, n := range net.neurons {
			if pending[n.id] != 0 {
				return nil, errors.Errorf("Neuron %v is part of, or fed by, a loop with no recurrent Connection", n)
			}
		}
	}

	return order, nil
}
