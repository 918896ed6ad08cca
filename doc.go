// Package freeform provides gradient-based training for neural networks that are represented as
// explicit graphs of neurons and connections, rather than as fixed-size layers. It also holds the
// abstractions shared with the subpackage "layered", which trains fixed-topology networks with
// gradients calculated by multiple goroutines.
//
// Creating Networks
//
// A Network is built one Neuron at a time:
//
//		net := new(ff.Network)
//		x, _ := net.AddInput("x")
//		b, _ := net.AddBias("bias", 1)
//		h, _ := net.AddNeuron("hidden", activations.Logistic())
//		net.Connect(x, h, 0.5)
//		net.Connect(b, h, -0.1)
//
//		if err := net.SetOutputs(h); err != nil {
//			return err
//		}
//
// For brevity, freeform is abbreviated 'ff'. Loops are allowed only through recurrent
// Connections, added by ConnectRecurrent, which carry the value their source had before the
// current call to Compute. Feedforward and Elman build common topologies in one call.
//
// Training
//
// Training state never lives on the Network. A Trainer allocates Buffers, indexed by Connection
// id, and hands them to a LearningRule after each full pass over the training set:
//
//		set, _ := ff.Data(dataset)
//		t, err := ff.NewTrainer(net, set, rules.Resilient(), ff.DefaultConfig())
//		if err != nil {
//			return err
//		}
//		defer t.Finish()
//
//		err = ff.Train(t, net, ff.TrainArgs{
//			RunCondition: ff.TrainUntilError(5000, 0.01),
//		})
//
// Recurrent Connections are trained as if the previous time step were a fixed input; there is no
// unrolling through time.
//
// Activations, LearningRules, ErrorFunctions, HyperParameters, and Initializers are found in the
// subpackages "activations", "rules", "costfuncs", "hyperparams", and "initializers", which
// register themselves by name when imported.
package freeform
