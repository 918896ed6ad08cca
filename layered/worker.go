package layered

import (
	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
	"github.com/sharnoff/freeform/utils"
	"gonum.org/v1/gonum/mat"
)

// gradientWorker calculates the gradients of its own copy of a Network over one Range of a
// training set. Workers share nothing, so several of them can run at once.
type gradientWorker struct {
	net *Network
	set ff.IndexableSet
	rng utils.Range

	flat []float64 // flat spot constant, by layer
	term func(actual, ideal float64) float64

	gradients []float64
	grads     []*mat.Dense // views into gradients, by layer

	deltas []*mat.VecDense // by layer
	back   []*mat.VecDense // deltas[l] passed back through layer l, with the bias entry

	ec ff.ErrorCalculation
}

func newGradientWorker(net *Network, set ff.IndexableSet, rng utils.Range, conf ff.Config) *gradientWorker {
	L := len(net.sizes)

	w := &gradientWorker{
		net:       net,
		set:       set,
		rng:       rng,
		flat:      make([]float64, L),
		term:      conf.ErrorTerm,
		gradients: make([]float64, net.WeightCount()),
		grads:     make([]*mat.Dense, L),
		deltas:    make([]*mat.VecDense, L),
		back:      make([]*mat.VecDense, L),
		ec:        ff.ErrorCalculation{Mode: conf.ErrorMode},
	}

	off := 0
	for l := 1; l < L; l++ {
		rows, cols := net.sizes[l], net.sizes[l-1]+1

		w.flat[l] = conf.FlatSpotFor(net.acts[l])
		w.grads[l] = mat.NewDense(rows, cols, w.gradients[off:off+rows*cols])
		w.deltas[l] = mat.NewVecDense(rows, nil)
		w.back[l] = mat.NewVecDense(cols, nil)
		off += rows * cols
	}

	return w
}

// run calculates the gradients and error over the worker's Range, replacing the results of any
// previous run.
func (w *gradientWorker) run() error {
	for i := range w.gradients {
		w.gradients[i] = 0
	}
	w.ec.Reset()

	for i := w.rng.Low; i < w.rng.High; i++ {
		p, err := w.set.Get(i)
		if err != nil {
			return errors.Wrapf(err, "Failed to get Pair %d", i)
		}

		if err = w.pair(p); err != nil {
			return errors.Wrapf(err, "Pair %d", i)
		}
	}

	return nil
}

func (w *gradientWorker) pair(p ff.Pair) error {
	n := w.net
	L := len(n.sizes) - 1

	if len(p.Input) != n.sizes[0] {
		return ff.SizeMismatchError{Expected: n.sizes[0], Got: len(p.Input), Of: "inputs"}
	} else if len(p.Ideal) != n.sizes[L] {
		return ff.SizeMismatchError{Expected: n.sizes[L], Got: len(p.Ideal), Of: "ideal outputs"}
	}

	n.forward(p.Input)

	outs := n.outputs[L]
	w.ec.Update(outs, p.Ideal, p.Significance)

	d := w.deltas[L].RawVector().Data
	act := n.acts[L]
	for i, o := range outs {
		d[i] = w.term(o, p.Ideal[i]) * p.Significance * (act.Deriv(n.sums[L][i], o) + w.flat[L])
	}

	for l := L; l >= 1; l-- {
		// gradient of each weight is the value it carries times the delta of its target
		w.grads[l].RankOne(w.grads[l], 1, w.deltas[l], n.outVecs[l-1])

		if l == 1 {
			break
		}

		w.back[l].MulVec(n.layers[l].T(), w.deltas[l])

		// the last entry of back is for the bias, which has no delta
		b := w.back[l].RawVector().Data
		prev := w.deltas[l-1].RawVector().Data
		act := n.acts[l-1]
		for i := range prev {
			prev[i] = b[i] * (act.Deriv(n.sums[l-1][i], n.outputs[l-1][i]) + w.flat[l-1])
		}
	}

	return nil
}
