package runtime

import (
	"fmt"

	"github.com/aretw0/pomdp/pkg/domain"
)

// UpdateBelief is the exact Bayesian filter:
//
//	b'(s') = Z(a,s',o) * sum_s T(a,s,s') b(s) / P(o | a, b)
//
// It returns the posterior together with the normalizer P(o | a, b).
// An observation with zero probability under the prior is an ErrNumeric
// failure; no smoothing or fallback is applied.
func UpdateBelief(m *domain.Model, prior domain.Belief, a, o int) (domain.Belief, float64, error) {
	nS := m.States.Len()
	if err := prior.CheckLen(nS); err != nil {
		return nil, 0, err
	}
	if _, err := m.Actions.Name(a); err != nil {
		return nil, 0, err
	}
	if _, err := m.Observations.Name(o); err != nil {
		return nil, 0, err
	}

	posterior := make(domain.Belief, nS)
	total := 0.0
	for next := 0; next < nS; next++ {
		pz, err := m.Observation(a, next, o)
		if err != nil {
			return nil, 0, fmt.Errorf("observation function: %w", err)
		}
		reach := 0.0
		for s, ps := range prior {
			pt, err := m.Transition(a, s, next)
			if err != nil {
				return nil, 0, fmt.Errorf("transition function: %w", err)
			}
			reach += pt * ps
		}
		posterior[next] = pz * reach
		total += posterior[next]
	}

	if total == 0 {
		return nil, 0, fmt.Errorf("%w: observation %d has zero probability after action %d", domain.ErrNumeric, o, a)
	}
	for i := range posterior {
		posterior[i] /= total
	}
	return posterior, total, nil
}
