// Package layered provides fully-connected networks with a fixed number of layers, whose weights
// are stored in a single flat slice. Because of this fixed structure, the gradients of a layered
// network can be calculated by several goroutines at once, each over a different part of the
// training set.
package layered

import (
	"fmt"

	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
	"gonum.org/v1/gonum/mat"
)

// biasValue is the activation of the bias input appended to every non-output layer
const biasValue float64 = 1

// Network is a layered, fully-connected network. Each layer after the first has one weight for
// every value of the previous layer plus one for its bias. The weights of layer l form a matrix
// with a row per neuron of l and a column per value of layer l-1, with the bias in the last column.
type Network struct {
	sizes []int
	acts  []ff.Activation // acts[0] is nil

	weights []float64

	// views into weights, by layer. layers[0] is nil.
	layers []*mat.Dense

	// outputs[l] has the values of layer l, followed by the bias value for all but the last layer
	outputs [][]float64
	sums    [][]float64

	// views into outputs and sums
	outVecs []*mat.VecDense
	sumVecs []*mat.VecDense
}

// New returns a Network with the given layer sizes, starting with the inputs, and one Activation
// for each layer after the inputs. All weights start at zero.
func New(sizes []int, acts []ff.Activation) (*Network, error) {
	if len(sizes) < 2 {
		return nil, ff.InvalidArgError{Arg: "sizes", Reason: fmt.Sprintf("need at least 2 layers, got %d", len(sizes))}
	} else if len(acts) != len(sizes)-1 {
		return nil, ff.SizeMismatchError{Expected: len(sizes) - 1, Got: len(acts), Of: "activations"}
	}

	for i, s := range sizes {
		if s < 1 {
			return nil, ff.InvalidArgError{Arg: "sizes", Reason: fmt.Sprintf("layer %d has size %d", i, s)}
		}
	}

	for i, a := range acts {
		if a == nil {
			return nil, errors.Wrapf(ff.NilArgError{Arg: "Activation"}, "Layer %d", i+1)
		}
	}

	n := &Network{
		sizes: make([]int, len(sizes)),
		acts:  make([]ff.Activation, len(sizes)),
	}

	copy(n.sizes, sizes)
	copy(n.acts[1:], acts)

	count := 0
	for l := 1; l < len(sizes); l++ {
		count += sizes[l] * (sizes[l-1] + 1)
	}

	n.weights = make([]float64, count)
	n.build()
	return n, nil
}

// build makes the value slices and every gonum view, from sizes and weights
func (n *Network) build() {
	L := len(n.sizes)

	n.layers = make([]*mat.Dense, L)
	n.outputs = make([][]float64, L)
	n.sums = make([][]float64, L)
	n.outVecs = make([]*mat.VecDense, L)
	n.sumVecs = make([]*mat.VecDense, L)

	off := 0
	for l := 0; l < L; l++ {
		size := n.sizes[l]
		if l != L-1 {
			size++
		}

		n.outputs[l] = make([]float64, size)
		if l != L-1 {
			n.outputs[l][size-1] = biasValue
		}
		n.outVecs[l] = mat.NewVecDense(size, n.outputs[l])

		if l == 0 {
			continue
		}

		rows, cols := n.sizes[l], n.sizes[l-1]+1
		n.layers[l] = mat.NewDense(rows, cols, n.weights[off:off+rows*cols])
		off += rows * cols

		n.sums[l] = make([]float64, n.sizes[l])
		n.sumVecs[l] = mat.NewVecDense(n.sizes[l], n.sums[l])
	}
}

// Clone returns a Network with the same structure and weights, that shares no memory with the
// original.
func (n *Network) Clone() *Network {
	c := &Network{
		sizes:   make([]int, len(n.sizes)),
		acts:    make([]ff.Activation, len(n.acts)),
		weights: make([]float64, len(n.weights)),
	}

	copy(c.sizes, n.sizes)
	copy(c.acts, n.acts)
	copy(c.weights, n.weights)
	c.build()
	return c
}

// Sizes returns a copy of the sizes of each layer, starting with the inputs.
func (n *Network) Sizes() []int {
	s := make([]int, len(n.sizes))
	copy(s, n.sizes)
	return s
}

// InputSize returns the number of inputs to the Network.
func (n *Network) InputSize() int {
	return n.sizes[0]
}

// OutputSize returns the number of outputs of the Network.
func (n *Network) OutputSize() int {
	return n.sizes[len(n.sizes)-1]
}

// WeightCount returns the total number of weights, including biases.
func (n *Network) WeightCount() int {
	return len(n.weights)
}

// Weights returns a copy of the flat weight slice.
func (n *Network) Weights() []float64 {
	ws := make([]float64, len(n.weights))
	copy(ws, n.weights)
	return ws
}

// SetWeights copies the given weights into the Network. If the number of weights given is not
// equal to WeightCount, type freeform.SizeMismatchError is returned.
func (n *Network) SetWeights(ws []float64) error {
	if len(ws) != len(n.weights) {
		return ff.SizeMismatchError{Expected: len(n.weights), Got: len(ws), Of: "weights"}
	}

	copy(n.weights, ws)
	return nil
}

// Weight returns the weight from value 'from' of layer l-1 to neuron 'to' of layer l. The bias of
// layer l is at from == the size of layer l-1.
func (n *Network) Weight(l, from, to int) float64 {
	return n.layers[l].At(to, from)
}

// SetWeight sets the weight given by the same indexes as Weight.
func (n *Network) SetWeight(l, from, to int, w float64) {
	n.layers[l].Set(to, from, w)
}

// Randomize sets the weights of each layer with init, with the fan-in being the number of values
// of the previous layer (plus bias) and the fan-out being the size of the next layer. If init is
// nil, the default Initializer is used.
func (n *Network) Randomize(init ff.Initializer) error {
	if init == nil {
		if init = ff.DefaultInitializer(); init == nil {
			return ff.NilArgError{Arg: "Initializer"}
		}
	}

	for l := 1; l < len(n.sizes); l++ {
		fanOut := 0
		if l+1 < len(n.sizes) {
			fanOut = n.sizes[l+1]
		}

		init.Set(n.sizes[l-1]+1, fanOut, n.layers[l].RawMatrix().Data)
	}

	return nil
}

// Compute returns the outputs of the Network for the given inputs. If the number of inputs is
// wrong, type freeform.SizeMismatchError is returned.
func (n *Network) Compute(inputs []float64) ([]float64, error) {
	if len(inputs) != n.sizes[0] {
		return nil, ff.SizeMismatchError{Expected: n.sizes[0], Got: len(inputs), Of: "inputs"}
	}

	n.forward(inputs)

	outs := make([]float64, n.OutputSize())
	copy(outs, n.outputs[len(n.outputs)-1])
	return outs, nil
}

// forward assumes that the inputs are the right size
func (n *Network) forward(inputs []float64) {
	copy(n.outputs[0], inputs)

	for l := 1; l < len(n.sizes); l++ {
		n.sumVecs[l].MulVec(n.layers[l], n.outVecs[l-1])

		act := n.acts[l]
		for i, s := range n.sums[l] {
			n.outputs[l][i] = act.Value(s)
		}
	}
}
