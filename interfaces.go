package freeform

// Activation is the function applied by a Neuron to the weighted sum of its inputs.
type Activation interface {
	// TypeString returns the name the Activation is registered under. For example: the logistic
	// function should return "logistic".
	TypeString() string

	// Value returns the activation for the given weighted sum.
	Value(sum float64) float64

	// Deriv returns the slope of the activation function, given both the weighted sum and the
	// value that Value returned for it. Implementations may use whichever is cheaper.
	Deriv(sum, value float64) float64
}

// Saturating is an optional extension of Activation. Activations that report true have the flat
// spot constant added to their derivative during training, if the training Config enables it.
type Saturating interface {
	Saturating() bool
}

// ErrorFunction gives the error term of a single output, before it is scaled by the significance
// of the Pair and the derivative of the output's activation. The error term is the negative of the
// cost's derivative with respect to the output, so that gradients point in the direction that
// reduces the cost. A nil ErrorFunction is the same as "linear": ideal - actual.
type ErrorFunction interface {
	// TypeString returns the name the ErrorFunction is registered under.
	TypeString() string

	Term(actual, ideal float64) float64
}

// LearningRule turns accumulated gradients into weight changes. The same rules serve both the
// graph-based Network and the layered networks, because both expose their weights as a single
// slice indexed the same way as the Buffers.
type LearningRule interface {
	// TypeString returns the name the LearningRule is registered under.
	TypeString() string

	// Init is called once on freshly allocated Buffers, before the first Update.
	Init(*Buffers)

	// Update applies the gradients in the Buffers to the weights, in place, and must leave
	// buf.Gradients zeroed for the next batch. iter is the number of the current iteration,
	// starting at zero.
	Update(iter int, weights []float64, buf *Buffers) error
}

// HyperParameter is a value that may change over the course of training, like a learning rate.
type HyperParameter interface {
	TypeString() string

	// Value returns the value of the HyperParameter at the given iteration
	Value(iter int) float64
}

// Initializer sets initial weights, given the number of weights feeding into and out of the
// neurons that the weights belong to.
type Initializer interface {
	Set(fanIn, fanOut int, ws []float64)
}

// Computer is anything that can map inputs to outputs. Both kinds of network implement it.
type Computer interface {
	Compute(inputs []float64) ([]float64, error)
}

// Iterative is a training process that advances one batch at a time.
type Iterative interface {
	// Iteration runs a single batch: gradient calculation followed by a weight update.
	Iteration() error

	// Error returns the training error measured during the most recent Iteration.
	Error() float64

	// Iter returns the number of iterations that have been completed.
	Iter() int
}
