package initializers

type leCun struct {
	*varianceScaling
}

// LeCun returns variance scaling by fan-in with a factor of 1.
func LeCun() leCun {
	return leCun{VarianceScaling().In().Factor(1)}
}

type he struct {
	*varianceScaling
}

// He returns variance scaling by fan-in with a factor of 2, suited to ReLU.
func He() he {
	return he{VarianceScaling().In().Factor(2)}
}
