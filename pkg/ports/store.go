package ports

import (
	"context"

	"github.com/aretw0/pomdp/pkg/domain"
)

// BeliefStore defines where the current belief of each session lives.
type BeliefStore interface {
	// Save records the belief for a given session ID.
	Save(ctx context.Context, sessionID string, belief domain.Belief) error

	// Load retrieves the belief for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (domain.Belief, error)

	// Delete removes the belief for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
