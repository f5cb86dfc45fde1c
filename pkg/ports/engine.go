package ports

import (
	"context"

	"github.com/aretw0/pomdp/pkg/domain"
)

// BeliefEngine is the stateless numerical core bound to one Model and one Policy.
// Implementations must be safe for concurrent use since the model and policy are read-only.
type BeliefEngine interface {
	// Update returns the posterior belief after taking action a and observing o.
	Update(ctx context.Context, prior domain.Belief, a, o int) (domain.Belief, error)

	// BestAction evaluates the policy against the belief.
	BestAction(ctx context.Context, belief domain.Belief) (domain.Decision, error)

	// Values returns the value of every alpha vector under the belief, in policy order.
	Values(belief domain.Belief) ([]float64, error)

	// Model returns the model the engine was built with.
	Model() *domain.Model
}
