package rules

import (
	"math"

	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
)

// The constants of resilient propagation
const (
	// PositiveEta is the factor by which the step size grows while the gradient keeps its sign
	PositiveEta float64 = 1.2
	// NegativeEta is the factor by which the step size shrinks when the gradient changes sign
	NegativeEta float64 = 0.5
	// DeltaMin is the smallest the step size may become
	DeltaMin float64 = 1e-6
	// DefaultInitialUpdate is the step size that every weight starts with
	DefaultInitialUpdate float64 = 0.1
	// DefaultMaxStep is the largest the step size may become
	DefaultMaxStep float64 = 50
	// ZeroTolerance is the magnitude below which a value is treated as zero when taking its sign
	ZeroTolerance float64 = 1e-17
)

type rprop struct {
	initialUpdate float64
	maxStep       float64
}

// Resilient returns resilient propagation (RPROP), which implements freeform.LearningRule. RPROP
// keeps a step size for each weight and uses only the sign of the gradient:
//	(0) If the gradient has the same sign as last time, the step size grows by PositiveEta (up to
//	    the max step) and the weight moves by the step size in the direction of the gradient.
//	(1) If the sign has flipped, the step size shrinks by NegativeEta (down to DeltaMin), the
//	    previous change to the weight is undone, and the gradient is forgotten so that the next
//	    iteration makes no adjustment to the step size.
//	(2) Otherwise (one of them is zero), the weight moves by the current step size in the
//	    direction of the gradient.
func Resilient() *rprop {
	return &rprop{DefaultInitialUpdate, DefaultMaxStep}
}

// InitialUpdate sets the step size that every weight starts with, returning the same
// LearningRule.
func (r *rprop) InitialUpdate(v float64) *rprop {
	r.initialUpdate = v
	return r
}

// MaxStep sets the largest step size, returning the same LearningRule.
func (r *rprop) MaxStep(v float64) *rprop {
	r.maxStep = v
	return r
}

func (r *rprop) TypeString() string {
	return "rprop"
}

func (r *rprop) Init(buf *ff.Buffers) {
	for i := range buf.UpdateValues {
		buf.UpdateValues[i] = r.initialUpdate
	}
}

func (r *rprop) Update(iter int, weights []float64, buf *ff.Buffers) error {
	if err := check(weights, buf); err != nil {
		return errors.Wrapf(err, "Can't run %s", r.TypeString())
	}

	for i := range weights {
		weights[i] += r.change(i, buf)
		buf.Gradients[i] = 0
	}

	return nil
}

// change returns the change to make to weight i, updating the rest of its state
func (r *rprop) change(i int, buf *ff.Buffers) float64 {
	grad := buf.Gradients[i]
	var weightChange float64

	switch sign(grad * buf.LastGradients[i]) {
	case 1:
		delta := math.Min(buf.UpdateValues[i]*PositiveEta, r.maxStep)
		buf.UpdateValues[i] = delta
		weightChange = sign(grad) * delta
		buf.LastGradients[i] = grad
	case -1:
		buf.UpdateValues[i] = math.Max(buf.UpdateValues[i]*NegativeEta, DeltaMin)
		weightChange = -buf.LastDeltas[i]
		// no adjustment next time
		buf.LastGradients[i] = 0
	default:
		weightChange = sign(grad) * buf.UpdateValues[i]
		buf.LastGradients[i] = grad
	}

	buf.LastDeltas[i] = weightChange
	return weightChange
}

// sign returns -1, 0, or 1, treating values within ZeroTolerance of zero as zero
func sign(v float64) float64 {
	if math.Abs(v) < ZeroTolerance {
		return 0
	} else if v > 0 {
		return 1
	}

	return -1
}
