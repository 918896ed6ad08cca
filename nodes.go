package freeform

import (
	"fmt"
)

// String offers a universal method of gaining information about a Neuron without printing all of
// its fields. String returns the Neuron's name, quoted, unless it is an empty string, in which case
// it returns one of:
//	<Is Input, id: %d>
//	<Is Bias, id: %d>
//	<id: %d, Activation: %s>
// Finally, if given a Neuron that is nil, String will return:
//	<nil>
func (n *Neuron) String() string {
	if n == nil {
		return "<nil>"
	}

	if n.name != "" {
		return "\"" + n.name + "\""
	}

	switch n.kind {
	case input:
		return fmt.Sprintf("<Is Input, id: %d>", n.id)
	case bias:
		return fmt.Sprintf("<Is Bias, id: %d>", n.id)
	default:
		return fmt.Sprintf("<id: %d, Activation: %s>", n.id, n.act.TypeString())
	}
}

// Name returns the name of the Neuron. This may be an empty string.
func (n *Neuron) Name() string {
	return n.name
}

// ID returns the non-negative integer given to the Neuron as a member of its Network. IDs are
// unique within Networks.
func (n *Neuron) ID() int {
	return n.id
}

// IsInput returns whether or not the Neuron is an input Neuron.
func (n *Neuron) IsInput() bool {
	return n.kind == input
}

// IsBias returns whether or not the Neuron is a bias Neuron.
func (n *Neuron) IsBias() bool {
	return n.kind == bias
}

// IsOutput returns whether or not the Neuron is an output of its Network.
func (n *Neuron) IsOutput() bool {
	return n.outputIndex >= 0
}

// Activation returns the Activation of the Neuron, which is nil for input and bias Neurons.
func (n *Neuron) Activation() Activation {
	return n.act
}

// Value returns the activation of the Neuron as of the last call to Compute.
func (n *Neuron) Value() float64 {
	return n.activation
}

// Sum returns the weighted sum of the Neuron's inbound Connections as of the last call to
// Compute.
func (n *Neuron) Sum() float64 {
	return n.sum
}

// Inbound returns a copy of the Connections leading into the Neuron.
func (n *Neuron) Inbound() []*Connection {
	cs := make([]*Connection, len(n.inbound))
	copy(cs, n.inbound)
	return cs
}

// Outbound returns a copy of the Connections leading out of the Neuron.
func (n *Neuron) Outbound() []*Connection {
	cs := make([]*Connection, len(n.outbound))
	copy(cs, n.outbound)
	return cs
}

func (c *Connection) String() string {
	arrow := "->"
	if c.recurrent {
		arrow = "~>"
	}

	return fmt.Sprintf("%v %s %v (%g)", c.source, arrow, c.target, c.weight)
}

// ID returns the index of the Connection within its Network. It is also the index of the
// Connection's weight in Network.Weights and in training Buffers.
func (c *Connection) ID() int {
	return c.id
}

// Source returns the Neuron that the Connection leads from.
func (c *Connection) Source() *Neuron {
	return c.source
}

// Target returns the Neuron that the Connection leads to.
func (c *Connection) Target() *Neuron {
	return c.target
}

// Weight returns the current weight of the Connection.
func (c *Connection) Weight() float64 {
	return c.weight
}

// SetWeight sets the weight of the Connection.
func (c *Connection) SetWeight(w float64) {
	c.weight = w
}

// IsRecurrent returns whether or not the Connection carries values from the previous time step.
func (c *Connection) IsRecurrent() bool {
	return c.recurrent
}
