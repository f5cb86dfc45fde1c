package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/pomdp/internal/logging"
	"github.com/aretw0/pomdp/pkg/domain"
)

// Engine binds the belief filter and the policy evaluator to one model and
// one policy. It holds no belief of its own, so a single Engine can serve any
// number of sessions concurrently.
type Engine struct {
	model  *domain.Model
	policy *domain.Policy
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a new engine with dependencies.
func NewEngine(model *domain.Model, policy *domain.Policy, opts ...EngineOption) *Engine {
	e := &Engine{
		model:  model,
		policy: policy,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the model the engine reads from.
func (e *Engine) Model() *domain.Model { return e.model }

// Policy returns the policy the engine evaluates.
func (e *Engine) Policy() *domain.Policy { return e.policy }

// Update returns the posterior after taking action a and observing o.
func (e *Engine) Update(ctx context.Context, prior domain.Belief, a, o int) (domain.Belief, error) {
	posterior, normalizer, err := UpdateBelief(e.model, prior, a, o)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("belief updated",
		"session_id", SessionIDFrom(ctx),
		"action", a,
		"observation", o,
		"belief", posterior,
	)
	if e.hooks.OnBeliefUpdate != nil {
		e.hooks.OnBeliefUpdate(ctx, &domain.BeliefEvent{
			EventBase: domain.EventBase{
				Timestamp: time.Now(),
				Type:      domain.EventBeliefUpdate,
				SessionID: SessionIDFrom(ctx),
			},
			Action:      a,
			Observation: o,
			Prior:       prior.Clone(),
			Posterior:   posterior.Clone(),
			Normalizer:  normalizer,
		})
	}
	return posterior, nil
}

// BestAction evaluates the policy against the belief.
func (e *Engine) BestAction(ctx context.Context, belief domain.Belief) (domain.Decision, error) {
	d, err := BestAction(e.policy, belief)
	if err != nil {
		return domain.Decision{}, err
	}

	e.logger.Debug("action selected",
		"session_id", SessionIDFrom(ctx),
		"action", d.Action,
		"value", d.Value,
		"vector", d.Vector,
	)
	if e.hooks.OnActionSelected != nil {
		e.hooks.OnActionSelected(ctx, &domain.ActionEvent{
			EventBase: domain.EventBase{
				Timestamp: time.Now(),
				Type:      domain.EventActionSelected,
				SessionID: SessionIDFrom(ctx),
			},
			Action: d.Action,
			Value:  d.Value,
			Vector: d.Vector,
		})
	}
	return d, nil
}

// Values returns the value of every alpha vector under the belief.
func (e *Engine) Values(belief domain.Belief) ([]float64, error) {
	return Values(e.policy, belief)
}
