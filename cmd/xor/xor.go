// Command xor trains a small graph-based network to compute exclusive-or.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	ff "github.com/sharnoff/freeform"
	"github.com/sharnoff/freeform/activations"
	_ "github.com/sharnoff/freeform/costfuncs"
	"github.com/sharnoff/freeform/initializers"
	_ "github.com/sharnoff/freeform/rules"
)

const statusFrequency int = 100

var dataset = [][][]float64{
	{{0, 0}, {0}},
	{{0, 1}, {1}},
	{{1, 0}, {1}},
	{{1, 1}, {0}},
}

func main() {
	var (
		rule    = flag.String("rule", "rprop", "learning rule to train with")
		act     = flag.String("act", "logistic", "activation of the hidden layer")
		hidden  = flag.Int("hidden", 3, "number of hidden neurons")
		maxIter = flag.Int("iter", 5000, "maximum number of iterations")
		target  = flag.Float64("target", 0.01, "training error to stop at")
		mode    = flag.String("mode", "mse", "error mode: mse, rms, or sse")
		cost    = flag.String("cost", "linear", "error function of the outputs: linear, cross-entropy, huber, or abs")
		seed    = flag.Int64("seed", 1, "seed for the initial weights")
		dotPath = flag.String("dot", "", "write the trained network in the DOT language to this file")
		noFlat  = flag.Bool("noflat", false, "disable the flat spot fix")
		verbose = flag.Bool("v", false, "log every iteration")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "xor: ", 0)

	if err := run(*rule, *act, *hidden, *maxIter, *target, *mode, *cost, *seed, *dotPath, *noFlat, *verbose, logger); err != nil {
		logger.Fatalf("%+v", err)
	}
}

func run(ruleName, actName string, hidden, maxIter int, target float64, modeName, costName string, seed int64, dotPath string, noFlat, verbose bool, logger *log.Logger) error {
	rule, err := ff.GetLearningRule(ruleName)
	if err != nil {
		return err
	}

	act, err := ff.GetActivation(actName)
	if err != nil {
		return err
	}

	mode, err := ff.ParseErrorMode(modeName)
	if err != nil {
		return err
	}

	errFunc, err := ff.GetErrorFunction(costName)
	if err != nil {
		return err
	}

	net, err := ff.Feedforward([]int{2, hidden, 1}, act, activations.Logistic())
	if err != nil {
		return err
	}

	initializers.Seed(seed)
	if err = net.Randomize(nil); err != nil {
		return err
	}

	set, err := ff.Data(dataset)
	if err != nil {
		return err
	}

	conf := ff.DefaultConfig()
	conf.ErrorMode = mode
	conf.ErrorFunction = errFunc
	conf.FixFlatSpot = !noFlat
	if verbose {
		conf.Logger = logger
	}

	t, err := ff.NewTrainer(net, set, rule, conf)
	if err != nil {
		return err
	}
	defer t.Finish()

	fmt.Printf("Training with %s and %s error, %d hidden %s neurons\n", rule.TypeString(), errFunc.TypeString(), hidden, act.TypeString())
	fmt.Println("Iteration, Cost, Test Cost, Test Percent")

	err = ff.Train(t, net, ff.TrainArgs{
		RunCondition: ff.TrainUntilError(maxIter, target),
		SendStatus:   ff.Every(statusFrequency),
		TestData:     set,
		ShouldTest:   ff.Every(statusFrequency),
		TestMode:     mode,
		IsCorrect:    ff.CorrectRound,
		Update: func(r ff.Result) {
			if r.IsTest {
				fmt.Printf("%d, , %v, %v\n", r.Iteration, r.Cost, r.Correct)
			} else {
				fmt.Printf("%d, %v, ,\n", r.Iteration, r.Cost)
			}
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("Done after %d iterations, error %v\n", t.Iter(), t.Error())

	for _, d := range dataset {
		out, err := net.Compute(d[0])
		if err != nil {
			return err
		}

		fmt.Printf("%v -> %.4f (ideal %v)\n", d[0], out[0], d[1][0])
	}

	if dotPath != "" {
		dot, err := net.ToDot()
		if err != nil {
			return err
		}

		if err = os.WriteFile(dotPath, []byte(dot), 0644); err != nil {
			return err
		}
	}

	return nil
}
