package freeform

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Pair is a single training sample: the inputs to a network, the outputs it should produce, and
// how much the sample should count towards training. Pairs should not be modified once they have
// been given to a set.
type Pair struct {
	Input []float64
	Ideal []float64

	// Significance scales the error of the sample, and must be greater than zero. Samples built by
	// NewPair have a significance of 1; a Pair literal that leaves it out is rejected by NewBasicSet.
	Significance float64
}

// NewPair returns a Pair with a significance of 1.
func NewPair(input, ideal []float64) Pair {
	return Pair{input, ideal, 1}
}

// IndexableSet is a training set that supports random access. It is required for splitting the
// calculation of gradients between multiple goroutines.
type IndexableSet interface {
	// Len returns the number of Pairs in the set
	Len() int

	// Get returns the Pair at index i, where 0 <= i < Len()
	Get(i int) (Pair, error)

	// OpenAdditional returns another IndexableSet over the same data that can be used from a
	// different goroutine at the same time as the original.
	OpenAdditional() (IndexableSet, error)
}

// Sequential builds upon IndexableSet for recurrent Networks, marking where each sequence of
// time steps begins. The stored context of the Network is cleared at the start of each sequence.
type Sequential interface {
	IndexableSet

	// SequenceStart returns whether the Pair at index i is the first of its sequence.
	SequenceStart(i int) bool
}

// BasicSet is an IndexableSet held entirely in memory. Because it is never modified after
// construction, OpenAdditional returns the set itself.
type BasicSet struct {
	pairs []Pair
}

// Len is the implementation of IndexableSet
func (s *BasicSet) Len() int {
	return len(s.pairs)
}

// Get is the implementation of IndexableSet. Indexes out of range return an error.
func (s *BasicSet) Get(i int) (Pair, error) {
	if i < 0 || i >= len(s.pairs) {
		return Pair{}, errors.Errorf("Index %d out of range of set with %d Pairs", i, len(s.pairs))
	}

	return s.pairs[i], nil
}

// OpenAdditional is the implementation of IndexableSet
func (s *BasicSet) OpenAdditional() (IndexableSet, error) {
	return s, nil
}

// NewBasicSet returns a BasicSet containing the given Pairs. Every Pair must have the same input
// and ideal sizes, and a finite significance greater than zero.
func NewBasicSet(pairs []Pair) (*BasicSet, error) {
	if len(pairs) == 0 {
		return nil, InvalidArgError{"training set", "has no Pairs"}
	}

	inSize, idealSize := len(pairs[0].Input), len(pairs[0].Ideal)
	for i, p := range pairs {
		if len(p.Input) != inSize {
			return nil, errors.Wrapf(SizeMismatchError{inSize, len(p.Input), "inputs"}, "Pair %d", i)
		} else if len(p.Ideal) != idealSize {
			return nil, errors.Wrapf(SizeMismatchError{idealSize, len(p.Ideal), "ideals"}, "Pair %d", i)
		} else if !(p.Significance > 0) || math.IsInf(p.Significance, 0) {
			return nil, InvalidArgError{"significance", fmt.Sprintf("Pair %d has significance %v, must be finite and > 0", i, p.Significance)}
		}
	}

	ps := make([]Pair, len(pairs))
	copy(ps, pairs)
	return &BasicSet{ps}, nil
}

// Data converts a 3D dataset of float64 to a BasicSet. dataset indexing is:
// [data index][inputs, ideals][values]. Every Pair is given a significance of 1.
func Data(dataset [][][]float64) (*BasicSet, error) {
	if len(dataset) == 0 {
		return nil, InvalidArgError{"dataset", "has no data (len == 0)"}
	}

	pairs := make([]Pair, len(dataset))
	for i, d := range dataset {
		if len(d) < 2 {
			return nil, InvalidArgError{"dataset", fmt.Sprintf("lacks required data at index %d (len([%d]) < 2)", i, i)}
		}

		pairs[i] = NewPair(d[0], d[1])
	}

	return NewBasicSet(pairs)
}

// Sequences is a Sequential set made of multiple sequences of Pairs. The Pairs are indexed in
// order, sequence by sequence.
type Sequences struct {
	*BasicSet

	// starts[i] is the index of the first Pair in sequence i
	starts map[int]bool
}

// SeqData returns a Sequential set from the given sequences. Every sequence must be at least two
// time steps long; recurrent training on a single step is degenerate, so shorter sequences
// return type InvalidArgError.
func SeqData(seqs [][]Pair) (*Sequences, error) {
	if len(seqs) == 0 {
		return nil, InvalidArgError{"sequences", "none given"}
	}

	var pairs []Pair
	starts := make(map[int]bool)
	for i, seq := range seqs {
		if len(seq) <= 1 {
			return nil, InvalidArgError{"sequence", fmt.Sprintf("sequence %d has %d time steps, need at least 2", i, len(seq))}
		}

		starts[len(pairs)] = true
		pairs = append(pairs, seq...)
	}

	bs, err := NewBasicSet(pairs)
	if err != nil {
		return nil, err
	}

	return &Sequences{bs, starts}, nil
}

// SequenceStart is the implementation of Sequential
func (s *Sequences) SequenceStart(i int) bool {
	return s.starts[i]
}

// OpenAdditional is the implementation of IndexableSet
func (s *Sequences) OpenAdditional() (IndexableSet, error) {
	return s, nil
}
