package freeform

// Network is a neural network represented as an explicit graph of Neurons and Connections, rather
// than as fixed-size layers. Any topology is allowed, as long as every loop contains at least one
// recurrent Connection.
//
// A Network is created by new(Network), built with AddInput, AddBias, AddNeuron, and Connect, and
// finalized with SetOutputs.
type Network struct {
	// all of the Neurons, stored such that their id is their index in this slice
	neurons []*Neuron

	// all of the Connections, stored such that their id is their index in this slice
	conns []*Connection

	inputs, outputs []*Neuron

	// the Neurons with an Activation, in an order such that every source of a non-recurrent
	// Connection comes before its target. Set by SetOutputs.
	order []*Neuron

	// the activations of every Neuron as of the start of the most recent Compute, indexed by
	// Neuron id. Recurrent Connections read from here.
	prev []float64

	// Whether or not there are any recurrent Connections in the Network
	hasRecurrent bool

	stat status
}

type status int8

const (
	initialized status = iota // 0
	finalized   status = iota // 1
)

type neuronKind int8

const (
	computed neuronKind = iota
	input
	bias
)

// Neuron is a single unit of a Network. Input Neurons take their activation from the inputs to the
// Network, bias Neurons keep a fixed activation, and all others sum their inbound Connections and
// apply their Activation.
type Neuron struct {
	// The name that will be used to print this Neuron. Completely optional, may be empty.
	name string

	// used for order identification of which Neurons were added first
	id int

	// used for validation during setup
	host *Network

	kind neuronKind

	// nil for input and bias Neurons
	act Activation

	// the weighted sum of the inbound Connections, as of the last Compute
	sum float64

	activation float64

	inbound, outbound []*Connection

	// outputIndex indicates the index in the Network outputs of this Neuron. Non-output Neurons
	// are given values of -1.
	outputIndex int
}

// Connection is a directed, weighted edge between two Neurons.
type Connection struct {
	id int

	source, target *Neuron

	weight float64

	// recurrent Connections carry the activation of their source from the previous Compute
	recurrent bool
}
