// Package penalties provides weight regularization. A Penalty is applied by wrapping a
// LearningRule with Penalized, which adjusts every gradient before the rule sees it.
package penalties

import (
	"github.com/pkg/errors"
	ff "github.com/sharnoff/freeform"
)

// Penalty adjusts the gradient of a weight so that training also pulls the weight towards zero.
// Gradients point in the direction that reduces the error, so a Penalty subtracts from them.
type Penalty interface {
	TypeString() string

	// Penalize returns the adjusted gradient of a weight
	Penalize(weight, grad float64) float64
}

type penalized struct {
	rule    ff.LearningRule
	penalty Penalty
}

// Penalized returns a LearningRule that applies p to the gradients before running rule.
func Penalized(rule ff.LearningRule, p Penalty) (ff.LearningRule, error) {
	if rule == nil {
		return nil, ff.NilArgError{Arg: "LearningRule"}
	} else if p == nil {
		return nil, ff.NilArgError{Arg: "Penalty"}
	}

	return &penalized{rule, p}, nil
}

func (p *penalized) TypeString() string {
	return p.rule.TypeString() + "+" + p.penalty.TypeString()
}

func (p *penalized) Init(buf *ff.Buffers) {
	p.rule.Init(buf)
}

func (p *penalized) Update(iter int, weights []float64, buf *ff.Buffers) error {
	if !buf.Allocated() {
		return ff.ErrNotAllocated
	} else if buf.Len() != len(weights) {
		return ff.SizeMismatchError{Expected: buf.Len(), Got: len(weights), Of: "weights"}
	}

	for i, w := range weights {
		buf.Gradients[i] = p.penalty.Penalize(w, buf.Gradients[i])
	}

	return errors.Wrapf(p.rule.Update(iter, weights, buf), "%s", p.penalty.TypeString())
}
