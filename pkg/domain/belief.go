package domain

import (
	"fmt"
	"math"
)

// BeliefTolerance bounds how far a belief may sum from 1.
const BeliefTolerance = 1e-6

// Belief is a probability distribution over the states of a Model.
// Updates always produce a new Belief; a Belief is never modified in place.
type Belief []float64

// NewBelief copies p and checks that it is a distribution over n states.
func NewBelief(p []float64, n int) (Belief, error) {
	b := make(Belief, len(p))
	copy(b, p)
	if err := b.Validate(n); err != nil {
		return nil, err
	}
	return b, nil
}

// UniformBelief returns the uniform distribution over n states.
func UniformBelief(n int) Belief {
	b := make(Belief, n)
	for i := range b {
		b[i] = 1.0 / float64(n)
	}
	return b
}

// Clone returns an independent copy.
func (b Belief) Clone() Belief {
	out := make(Belief, len(b))
	copy(out, b)
	return out
}

// CheckLen reports ErrDimension when the belief is not over n states.
func (b Belief) CheckLen(n int) error {
	if len(b) != n {
		return fmt.Errorf("%w: belief has %d entries, model has %d states", ErrDimension, len(b), n)
	}
	return nil
}

// Validate checks length, non-negativity and normalization.
func (b Belief) Validate(n int) error {
	if err := b.CheckLen(n); err != nil {
		return err
	}
	sum := 0.0
	for i, p := range b {
		if p < 0 || math.IsNaN(p) {
			return fmt.Errorf("%w: belief entry %d is %v", ErrNumeric, i, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > BeliefTolerance {
		return fmt.Errorf("%w: belief sums to %v", ErrNumeric, sum)
	}
	return nil
}
