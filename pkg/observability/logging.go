package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/pomdp/pkg/domain"
)

// LogHooks returns hooks that write every event to logger at Info level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnBeliefUpdate: func(ctx context.Context, e *domain.BeliefEvent) {
			logger.InfoContext(ctx, "belief_update",
				"session_id", e.SessionID,
				"action", e.Action,
				"observation", e.Observation,
				"posterior", e.Posterior,
			)
		},
		OnActionSelected: func(ctx context.Context, e *domain.ActionEvent) {
			logger.InfoContext(ctx, "action_selected",
				"session_id", e.SessionID,
				"action", e.Action,
				"value", e.Value,
			)
		},
	}
}
