package freeform

import (
	"fmt"

	"github.com/pkg/errors"
)

// Feedforward builds a finalized, fully-connected layered Network. sizes gives the number of
// Neurons in each layer, starting with the inputs; there must be at least two layers. Every
// non-output layer also gets a bias Neuron with activation 1. Hidden layers use hidden and the
// output layer uses output. All weights start at zero; use Randomize to initialize them.
func Feedforward(sizes []int, hidden, output Activation) (*Network, error) {
	if len(sizes) < 2 {
		return nil, InvalidArgError{"sizes", fmt.Sprintf("need at least 2 layers, got %d", len(sizes))}
	} else if output == nil || (hidden == nil && len(sizes) > 2) {
		return nil, NilArgError{"Activation"}
	}

	for i, s := range sizes {
		if s < 1 {
			return nil, InvalidArgError{"sizes", fmt.Sprintf("layer %d has size %d", i, s)}
		}
	}

	net := new(Network)

	prev := make([]*Neuron, sizes[0])
	for i := range prev {
		in, err := net.AddInput(fmt.Sprintf("input %d", i))
		if err != nil {
			return nil, err
		}
		prev[i] = in
	}

	for l := 1; l < len(sizes); l++ {
		b, err := net.AddBias(fmt.Sprintf("bias %d", l-1), 1)
		if err != nil {
			return nil, err
		}

		act, kind := hidden, "hidden"
		if l == len(sizes)-1 {
			act, kind = output, "output"
		}

		layer := make([]*Neuron, sizes[l])
		for i := range layer {
			n, err := net.AddNeuron(fmt.Sprintf("%s %d.%d", kind, l, i), act)
			if err != nil {
				return nil, err
			}

			for _, p := range append(prev, b) {
				if _, err := net.Connect(p, n, 0); err != nil {
					return nil, errors.Wrapf(err, "Failed to connect layer %d", l)
				}
			}

			layer[i] = n
		}

		prev = layer
	}

	if err := net.SetOutputs(prev...); err != nil {
		return nil, err
	}

	return net, nil
}

// Elman builds a finalized simple recurrent Network: inputs, a hidden layer whose previous values
// are fed back into itself through recurrent Connections, and an output layer. Both the input and
// hidden layer have a bias Neuron. All weights start at zero.
func Elman(inputs, hiddenSize, outputs int, hidden, output Activation) (*Network, error) {
	if inputs < 1 || hiddenSize < 1 || outputs < 1 {
		return nil, InvalidArgError{"sizes", fmt.Sprintf("all must be >= 1 (%d, %d, %d)", inputs, hiddenSize, outputs)}
	} else if hidden == nil || output == nil {
		return nil, NilArgError{"Activation"}
	}

	net := new(Network)

	ins := make([]*Neuron, inputs)
	for i := range ins {
		in, err := net.AddInput(fmt.Sprintf("input %d", i))
		if err != nil {
			return nil, err
		}
		ins[i] = in
	}

	inBias, err := net.AddBias("input bias", 1)
	if err != nil {
		return nil, err
	}

	hs := make([]*Neuron, hiddenSize)
	for i := range hs {
		if hs[i], err = net.AddNeuron(fmt.Sprintf("hidden %d", i), hidden); err != nil {
			return nil, err
		}
	}

	for _, h := range hs {
		for _, in := range append(ins, inBias) {
			if _, err = net.Connect(in, h, 0); err != nil {
				return nil, err
			}
		}

		// the context: every hidden Neuron sees every hidden value from the previous step
		for _, ctx := range hs {
			if _, err = net.ConnectRecurrent(ctx, h, 0); err != nil {
				return nil, err
			}
		}
	}

	hBias, err := net.AddBias("hidden bias", 1)
	if err != nil {
		return nil, err
	}

	outs := make([]*Neuron, outputs)
	for i := range outs {
		if outs[i], err = net.AddNeuron(fmt.Sprintf("output %d", i), output); err != nil {
			return nil, err
		}

		for _, h := range append(hs, hBias) {
			if _, err = net.Connect(h, outs[i], 0); err != nil {
				return nil, err
			}
		}
	}

	if err = net.SetOutputs(outs...); err != nil {
		return nil, err
	}

	return net, nil
}
