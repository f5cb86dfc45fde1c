package pomdp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/pomdp/internal/compiler"
	"github.com/aretw0/pomdp/internal/logging"
	"github.com/aretw0/pomdp/internal/runtime"
	"github.com/aretw0/pomdp/internal/validator"
	"github.com/aretw0/pomdp/pkg/adapters/file"
	"github.com/aretw0/pomdp/pkg/domain"
	"github.com/aretw0/pomdp/pkg/observability"
	"github.com/aretw0/pomdp/pkg/ports"
	"github.com/aretw0/pomdp/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
)

// Version is the library version reported by the CLI.
const Version = "0.3.0"

// Engine is the high-level entry point for the library.
// It owns one parsed Model and Policy and hands out sessions over them.
type Engine struct {
	runtime   *runtime.Engine
	loader    ports.SourceLoader
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	strict    bool
	tolerance float64
	registry  prometheus.Registerer
	metrics   *observability.Metrics
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom SourceLoader, bypassing the filesystem.
func WithLoader(l ports.SourceLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrict makes New fail when the model's probability tables are not
// stochastic within tolerance (see Validate).
func WithStrict(tolerance float64) Option {
	return func(e *Engine) {
		e.strict = true
		e.tolerance = tolerance
	}
}

// WithMetrics records Prometheus metrics for every belief update and action
// selection, registered with reg once the model is known.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// New reads and parses the environment and policy documents.
// Names are file paths unless WithLoader provides another source.
func New(envName, policyName string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.loader == nil {
		eng.loader = file.NewLoader("")
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	parser := compiler.NewParser()

	envData, err := eng.loader.Read(envName)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment %q: %w", envName, err)
	}
	model, err := parser.ParseModel(envData)
	if err != nil {
		return nil, fmt.Errorf("environment %q: %w", envName, err)
	}

	policyData, err := eng.loader.Read(policyName)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy %q: %w", policyName, err)
	}
	policy, err := parser.ParsePolicy(policyData)
	if err != nil {
		return nil, fmt.Errorf("policy %q: %w", policyName, err)
	}

	if eng.strict {
		if err := validator.Check(model, eng.tolerance); err != nil {
			return nil, fmt.Errorf("environment %q: %w", envName, err)
		}
	}

	eng.logger.Debug("model loaded",
		"env", envName,
		"policy", policyName,
		"states", model.States.Len(),
		"actions", model.Actions.Len(),
		"observations", model.Observations.Len(),
		"vectors", policy.Len(),
	)

	hooks := eng.hooks
	if eng.registry != nil {
		eng.metrics = observability.NewMetrics(model, eng.registry)
		hooks = observability.Combine(hooks, eng.metrics.Hooks())
	}

	eng.runtime = runtime.NewEngine(model, policy,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(hooks),
	)
	return eng, nil
}

// Open is New followed by Start: a session over the two documents at prior.
func Open(envName, policyName string, prior []float64, opts ...Option) (*session.Session, error) {
	eng, err := New(envName, policyName, opts...)
	if err != nil {
		return nil, err
	}
	return eng.Start(prior)
}

// Start creates a new single-trajectory session at prior.
func (e *Engine) Start(prior []float64, opts ...session.SessionOption) (*session.Session, error) {
	return session.New(e.runtime, prior, opts...)
}

// Manager creates a session manager for many concurrent trajectories.
func (e *Engine) Manager(store ports.BeliefStore) *session.Manager {
	return session.NewManager(e.runtime, store, session.WithLogger(e.logger))
}

// Model returns the parsed environment.
func (e *Engine) Model() *domain.Model { return e.runtime.Model() }

// Policy returns the parsed policy.
func (e *Engine) Policy() *domain.Policy { return e.runtime.Policy() }

// Metrics returns the collectors installed by WithMetrics, or nil.
func (e *Engine) Metrics() *observability.Metrics { return e.metrics }

// Validate reports the stochasticity issues of the model's T and O tables.
func (e *Engine) Validate(tolerance float64) []validator.Issue {
	return validator.Validate(e.Model(), tolerance)
}

// BestAction evaluates the policy against an arbitrary belief.
func (e *Engine) BestAction(ctx context.Context, belief domain.Belief) (domain.Decision, error) {
	return e.runtime.BestAction(ctx, belief)
}
