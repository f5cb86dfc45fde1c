package domain

// ValuesReward is the only value semantics tag the runtime interprets.
const ValuesReward = "reward"

// Model is the fully expanded POMDP read from an environment file.
// Every shorthand of the source has been resolved into explicit cells of T, Z
// and R. A Model is built once by the compiler and must not be modified
// afterwards; it is safe for concurrent reads.
type Model struct {
	Discount float64
	Values   string

	States       Space
	Actions      Space
	Observations Space

	// T[a][s][s'] is the probability of reaching s' from s under a.
	T *Tensor
	// Z[a][s'][o] is the probability of observing o after a led to s'.
	Z *Tensor
	// R[a][s][s'][o] is the reward of the full transition.
	R *Tensor
}

// NewModel allocates the tables for the given spaces.
func NewModel(discount float64, values string, states, actions, observations Space) *Model {
	nS, nA, nO := states.Len(), actions.Len(), observations.Len()
	return &Model{
		Discount:     discount,
		Values:       values,
		States:       states,
		Actions:      actions,
		Observations: observations,
		T:            NewTensor(nA, nS, nS),
		Z:            NewTensor(nA, nS, nO),
		R:            NewTensor(nA, nS, nS, nO),
	}
}

// Transition returns T(a, s, s').
func (m *Model) Transition(a, s, next int) (float64, error) {
	return m.T.Get(a, s, next)
}

// Observation returns Z(a, s', o).
func (m *Model) Observation(a, next, o int) (float64, error) {
	return m.Z.Get(a, next, o)
}

// Reward returns R(a, s, s', o).
func (m *Model) Reward(a, s, next, o int) (float64, error) {
	return m.R.Get(a, s, next, o)
}

// ExpectedReward returns the immediate reward of taking a under belief b:
// sum over s, s', o of b(s) T(a,s,s') Z(a,s',o) R(a,s,s',o).
// Reward cells the environment file never assigned count as zero.
func (m *Model) ExpectedReward(a int, b Belief) (float64, error) {
	if err := b.CheckLen(m.States.Len()); err != nil {
		return 0, err
	}
	total := 0.0
	for s, ps := range b {
		if ps == 0 {
			continue
		}
		for next := 0; next < m.States.Len(); next++ {
			pt, err := m.Transition(a, s, next)
			if err != nil {
				return 0, err
			}
			if pt == 0 {
				continue
			}
			for o := 0; o < m.Observations.Len(); o++ {
				pz, err := m.Observation(a, next, o)
				if err != nil {
					return 0, err
				}
				r, _ := m.R.At(a, s, next, o)
				total += ps * pt * pz * r
			}
		}
	}
	return total, nil
}
