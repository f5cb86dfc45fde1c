package runtime

import (
	"fmt"

	"github.com/aretw0/pomdp/pkg/domain"
)

// Values returns the dot product of every alpha vector with the belief, in policy order.
func Values(p *domain.Policy, b domain.Belief) ([]float64, error) {
	out := make([]float64, p.Len())
	for i := range out {
		row := p.Row(i)
		if len(row) != len(b) {
			return nil, fmt.Errorf("%w: alpha vector %d has %d coefficients, belief has %d", domain.ErrDimension, i, len(row), len(b))
		}
		v := 0.0
		for s, c := range row {
			v += c * b[s]
		}
		out[i] = v
	}
	return out, nil
}

// BestAction returns the action of the alpha vector with the highest value
// under b. Ties go to the vector that comes first in the policy.
func BestAction(p *domain.Policy, b domain.Belief) (domain.Decision, error) {
	if p.Len() == 0 {
		return domain.Decision{}, fmt.Errorf("%w: policy has no alpha vectors", domain.ErrDimension)
	}
	values, err := Values(p, b)
	if err != nil {
		return domain.Decision{}, err
	}
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return domain.Decision{
		Action: p.Action(best),
		Value:  values[best],
		Vector: best,
	}, nil
}
