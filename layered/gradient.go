package layered

import (
	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
	"github.com/sharnoff/freeform/utils"
	"gonum.org/v1/gonum/floats"
)

// GradientCalculator splits a training set between workers and combines their results.
// Each worker has its own clone of the Network and its own view of the set, from OpenAdditional.
type GradientCalculator struct {
	net     *Network
	mode    ff.ErrorMode
	workers []*gradientWorker
}

// NewGradientCalculator divides set between conf.Threads workers, as given by utils.Workload.
func NewGradientCalculator(net *Network, set ff.IndexableSet, conf ff.Config) (*GradientCalculator, error) {
	if net == nil {
		return nil, ff.NilArgError{Arg: "Network"}
	} else if set == nil {
		return nil, ff.NilArgError{Arg: "Training set"}
	} else if err := conf.Validate(); err != nil {
		return nil, err
	}

	ranges, err := utils.Workload(set.Len(), conf.Threads)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't divide training set")
	}

	g := &GradientCalculator{
		net:     net,
		mode:    conf.ErrorMode,
		workers: make([]*gradientWorker, len(ranges)),
	}

	for i, r := range ranges {
		s := set
		if i != 0 {
			if s, err = set.OpenAdditional(); err != nil {
				return nil, errors.Wrapf(err, "Failed to open training set for worker %d", i)
			}
		}

		g.workers[i] = newGradientWorker(net.Clone(), s, r, conf)
	}

	return g, nil
}

// Workers returns the number of workers the training set is split between.
func (g *GradientCalculator) Workers() int {
	return len(g.workers)
}

// Calculate adds the gradients of the whole training set, at the current weights of the Network,
// to dst and returns the error. dst is only changed if every worker succeeds.
//
// The error is not an average of each worker's error. Instead, the sums and counts of every
// worker are merged into one ErrorCalculation, so the result is the same for any number of
// workers, up to floating-point rounding, even when the last worker is given more Pairs than the
// others.
func (g *GradientCalculator) Calculate(dst []float64) (float64, error) {
	if len(dst) != g.net.WeightCount() {
		return 0, ff.SizeMismatchError{Expected: g.net.WeightCount(), Got: len(dst), Of: "gradients"}
	}

	for _, w := range g.workers {
		copy(w.net.weights, g.net.weights)
	}

	err := utils.ForkJoin(len(g.workers), func(i int) error {
		return g.workers[i].run()
	})
	if err != nil {
		return 0, errors.Wrap(err, "Gradient calculation failed")
	}

	ec := ff.ErrorCalculation{Mode: g.mode}
	for _, w := range g.workers {
		floats.Add(dst, w.gradients)
		ec.Merge(&w.ec)
	}

	return ec.Calculate(), nil
}
