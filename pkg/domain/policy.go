package domain

// AlphaVector is one hyperplane of a value function, tagged with the action
// that achieves it.
type AlphaVector struct {
	Action int
	Values []float64
}

// Policy is the ordered set of alpha vectors read from a policy document.
// Order is significant: ties are broken in favour of the earlier vector.
type Policy struct {
	actions []int
	matrix  [][]float64
}

// NewPolicy stacks the vectors row-wise. The input is copied.
func NewPolicy(vectors []AlphaVector) *Policy {
	p := &Policy{
		actions: make([]int, len(vectors)),
		matrix:  make([][]float64, len(vectors)),
	}
	for i, v := range vectors {
		p.actions[i] = v.Action
		row := make([]float64, len(v.Values))
		copy(row, v.Values)
		p.matrix[i] = row
	}
	return p
}

// Len returns the number of alpha vectors.
func (p *Policy) Len() int { return len(p.matrix) }

// Action returns the action tag of the i-th vector.
func (p *Policy) Action(i int) int { return p.actions[i] }

// Row returns the coefficients of the i-th vector. Callers must not modify it.
func (p *Policy) Row(i int) []float64 { return p.matrix[i] }

// Vectors returns a copy of the policy as alpha vectors.
func (p *Policy) Vectors() []AlphaVector {
	out := make([]AlphaVector, len(p.matrix))
	for i := range p.matrix {
		vals := make([]float64, len(p.matrix[i]))
		copy(vals, p.matrix[i])
		out[i] = AlphaVector{Action: p.actions[i], Values: vals}
	}
	return out
}

// Decision is the outcome of evaluating a policy against a belief.
type Decision struct {
	Action int     // Action tag of the winning vector
	Value  float64 // Expected value of the belief under that vector
	Vector int     // Position of the winning vector in the policy
}
