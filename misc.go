package freeform

import (
	"math"
)

// CorrectRound returns whether every output rounds to its ideal value. It assumes
// len(outs) == len(ideals).
func CorrectRound(outs, ideals []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != ideals[i] {
			return false
		}
	}

	return true
}

// CorrectHighest returns whether the largest value in each is at the same index. Ties go to the
// earliest index.
func CorrectHighest(outs, ideals []float64) bool {
	return argmax(outs) == argmax(ideals)
}

func argmax(vs []float64) int {
	best := 0
	for i := range vs {
		if vs[i] > vs[best] {
			best = i
		}
	}

	return best
}

// TrainUntil returns a function that satisfies TrainArgs.RunCondition, stopping after the given
// number of iterations.
func TrainUntil(maxIterations int) func(int, float64) bool {
	return func(iteration int, lastErr float64) bool {
		return iteration < maxIterations
	}
}

// TrainUntilError returns a function that satisfies TrainArgs.RunCondition, stopping after the
// given number of iterations or once the training error is at most target, whichever is first.
// The error is not checked before the first iteration.
func TrainUntilError(maxIterations int, target float64) func(int, float64) bool {
	return func(iteration int, lastErr float64) bool {
		if iteration != 0 && lastErr <= target {
			return false
		}

		return iteration < maxIterations
	}
}

// Every returns a function that satisfies TrainArgs.SendStatus or TrainArgs.ShouldTest.
// 'frequency' is in units of iterations. A frequency less than 1 never returns true.
func Every(frequency int) func(int) bool {
	if frequency < 1 {
		return func(int) bool { return false }
	}

	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}
