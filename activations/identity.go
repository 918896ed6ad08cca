package activations

type identity int8

// Identity returns an Activation that returns its weighted sum unchanged. Linear is an alias.
func Identity() identity {
	return identity(0)
}

// Linear is a proxy for Identity
func Linear() identity {
	return Identity()
}

func (t identity) TypeString() string {
	return "linear"
}

func (t identity) Value(sum float64) float64 {
	return sum
}

func (t identity) Deriv(sum, value float64) float64 {
	return 1
}
