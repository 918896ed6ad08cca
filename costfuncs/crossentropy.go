package costfuncs

// bound keeps actual away from 0 and 1, where the cross-entropy error term is undefined
const bound float64 = 1e-12

type crossEntropy struct{}

// CrossEntropy returns the ErrorFunction of the binary cross-entropy,
//	-(ideal * ln(actual) + (1 - ideal) * ln(1 - actual))
// for outputs in (0, 1). Combined with logistic outputs and no flat spot, the delta of each
// output is exactly ideal - actual.
func CrossEntropy() crossEntropy {
	return crossEntropy{}
}

// NegativeLog is a proxy for CrossEntropy
func NegativeLog() crossEntropy {
	return CrossEntropy()
}

func (c crossEntropy) TypeString() string {
	return "cross-entropy"
}

func (c crossEntropy) Term(actual, ideal float64) float64 {
	if actual < bound {
		actual = bound
	} else if actual > 1-bound {
		actual = 1 - bound
	}

	return (ideal - actual) / (actual * (1 - actual))
}
