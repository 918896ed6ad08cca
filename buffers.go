package freeform

// Buffers holds the per-weight state of a training session. Every slice is indexed the same way
// as the weights being trained: by connection id for a Network, by flat weight index for a layered
// network. Buffers are allocated once per session and handed to the LearningRule on each update;
// networks themselves never hold training state.
type Buffers struct {
	// Gradients accumulates the gradient of each weight over the current batch. The sign is
	// such that adding a positive multiple of the gradient reduces the error.
	Gradients []float64

	// LastGradients holds the gradients of the previous batch
	LastGradients []float64

	// LastDeltas holds the most recent change applied to each weight
	LastDeltas []float64

	// UpdateValues holds per-weight step sizes, for rules that use them
	UpdateValues []float64
}

// NewBuffers allocates Buffers for n weights.
func NewBuffers(n int) *Buffers {
	return &Buffers{
		Gradients:     make([]float64, n),
		LastGradients: make([]float64, n),
		LastDeltas:    make([]float64, n),
		UpdateValues:  make([]float64, n),
	}
}

// Len returns the number of weights the Buffers were allocated for. Cleared Buffers have length 0.
func (b *Buffers) Len() int {
	return len(b.Gradients)
}

// Allocated returns whether the Buffers are usable, i.e. have not been cleared.
func (b *Buffers) Allocated() bool {
	return b != nil && b.Gradients != nil
}

// ZeroGradients resets the gradient accumulators, leaving the rest of the state intact.
func (b *Buffers) ZeroGradients() {
	for i := range b.Gradients {
		b.Gradients[i] = 0
	}
}

// Clear releases the Buffers at the end of a training session.
func (b *Buffers) Clear() {
	b.Gradients = nil
	b.LastGradients = nil
	b.LastDeltas = nil
	b.UpdateValues = nil
}
