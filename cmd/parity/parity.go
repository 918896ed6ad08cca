// Command parity trains a layered network on 3-bit parity, calculating gradients with several
// goroutines, and checks that the gradients match a single-threaded calculation.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
	"github.com/sharnoff/freeform/activations"
	"github.com/sharnoff/freeform/initializers"
	"github.com/sharnoff/freeform/layered"
	"github.com/sharnoff/freeform/penalties"
	_ "github.com/sharnoff/freeform/rules"
)

const statusFrequency int = 50

func main() {
	var (
		threads = flag.Int("threads", 0, "number of goroutines to calculate gradients with; 0 picks one per CPU")
		copies  = flag.Int("copies", 100, "number of times each of the 8 patterns is repeated")
		hidden  = flag.Int("hidden", 6, "number of hidden neurons")
		rule    = flag.String("rule", "rprop", "learning rule to train with")
		maxIter = flag.Int("iter", 2000, "maximum number of iterations")
		target  = flag.Float64("target", 0.01, "training error to stop at")
		seed    = flag.Int64("seed", 1, "seed for the initial weights")
		l2      = flag.Float64("l2", 0, "strength of L2 weight regularization; 0 disables it")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "parity: ", 0)

	if err := run(*threads, *copies, *hidden, *rule, *maxIter, *target, *seed, *l2, logger); err != nil {
		logger.Fatalf("%+v", err)
	}
}

// parity returns every 3-bit pattern, repeated 'copies' times, with an output of 1 if an odd
// number of bits are set
func parity(copies int) [][][]float64 {
	var ds [][][]float64
	for c := 0; c < copies; c++ {
		for i := 0; i < 8; i++ {
			in := make([]float64, 3)
			ones := 0
			for b := range in {
				if i&(1<<b) != 0 {
					in[b] = 1
					ones++
				}
			}

			ds = append(ds, [][]float64{in, {float64(ones % 2)}})
		}
	}

	return ds
}

func run(threads, copies, hidden int, ruleName string, maxIter int, target float64, seed int64, l2 float64, logger *log.Logger) error {
	rule, err := ff.GetLearningRule(ruleName)
	if err != nil {
		return err
	}

	if l2 > 0 {
		if rule, err = penalties.Penalized(rule, penalties.L2(l2)); err != nil {
			return err
		}
	}

	set, err := ff.Data(parity(copies))
	if err != nil {
		return err
	}

	net, err := layered.New([]int{3, hidden, 1}, []ff.Activation{activations.Tanh(), activations.Logistic()})
	if err != nil {
		return err
	}

	initializers.Seed(seed)
	if err = net.Randomize(nil); err != nil {
		return err
	}

	conf := ff.DefaultConfig()
	conf.Threads = threads
	conf.Logger = logger

	if err = compare(net, set, conf); err != nil {
		return err
	}

	t, err := layered.NewTrainer(net, set, rule, conf)
	if err != nil {
		return err
	}
	defer t.Finish()

	err = ff.Train(t, net, ff.TrainArgs{
		RunCondition: ff.TrainUntilError(maxIter, target),
		SendStatus:   ff.Every(statusFrequency),
		Update: func(r ff.Result) {
			fmt.Printf("%d, %v\n", r.Iteration, r.Cost)
		},
	})
	if err != nil {
		return err
	}

	cost, correct, err := ff.Test(net, set, ff.MSE, ff.CorrectRound)
	if err != nil {
		return err
	}

	fmt.Printf("Done after %d iterations with %d workers: error %v, %.1f%% correct\n",
		t.Iter(), t.Workers(), cost, 100*correct)
	return nil
}

// compare calculates the gradients once with conf.Threads and once with a single goroutine, and
// returns an error if they differ by more than rounding
func compare(net *layered.Network, set ff.IndexableSet, conf ff.Config) error {
	multi, err := layered.NewGradientCalculator(net, set, conf)
	if err != nil {
		return err
	}

	conf.Threads = 1
	single, err := layered.NewGradientCalculator(net, set, conf)
	if err != nil {
		return err
	}

	gm := make([]float64, net.WeightCount())
	gs := make([]float64, net.WeightCount())

	em, err := multi.Calculate(gm)
	if err != nil {
		return err
	}

	es, err := single.Calculate(gs)
	if err != nil {
		return err
	}

	const tolerance float64 = 1e-9

	if !near(em, es, tolerance) {
		return errors.Errorf("Error with %d workers (%v) differs from single-threaded (%v)", multi.Workers(), em, es)
	}

	for i := range gm {
		if !near(gm[i], gs[i], tolerance) {
			return errors.Errorf("Gradient %d with %d workers (%v) differs from single-threaded (%v)", i, multi.Workers(), gm[i], gs[i])
		}
	}

	fmt.Printf("Gradients with %d workers match single-threaded\n", multi.Workers())
	return nil
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
