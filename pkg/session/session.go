package session

import (
	"context"

	"github.com/aretw0/pomdp/internal/runtime"
	"github.com/aretw0/pomdp/pkg/domain"
	"github.com/aretw0/pomdp/pkg/ports"
)

// Session composes a shared engine with one exclusively owned belief.
type Session struct {
	id     string
	engine ports.BeliefEngine
	belief domain.Belief
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithID tags the lifecycle events of the session with id.
func WithID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// New starts a session at prior, which must be a distribution over the
// model's states.
func New(engine ports.BeliefEngine, prior []float64, opts ...SessionOption) (*Session, error) {
	s := &Session{engine: engine}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reset(prior); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the session ID, empty unless set with WithID.
func (s *Session) ID() string { return s.id }

// Model returns the model the session runs against.
func (s *Session) Model() *domain.Model { return s.engine.Model() }

// Belief returns a copy of the current belief.
func (s *Session) Belief() domain.Belief { return s.belief.Clone() }

// Reset replaces the belief with prior. The session never resets on its own.
func (s *Session) Reset(prior []float64) error {
	b, err := domain.NewBelief(prior, s.engine.Model().States.Len())
	if err != nil {
		return err
	}
	s.belief = b
	return nil
}

// BestAction returns the policy's choice for the current belief.
func (s *Session) BestAction(ctx context.Context) (domain.Decision, error) {
	return s.engine.BestAction(s.tag(ctx), s.belief)
}

// Update replaces the belief with the posterior after action a and observation o.
// On failure the belief is left unchanged.
func (s *Session) Update(ctx context.Context, a, o int) error {
	posterior, err := s.engine.Update(s.tag(ctx), s.belief, a, o)
	if err != nil {
		return err
	}
	s.belief = posterior
	return nil
}

// Values returns the value of every alpha vector under the current belief.
func (s *Session) Values() ([]float64, error) {
	return s.engine.Values(s.belief)
}

// ExpectedReward returns the immediate reward of action a under the current belief.
func (s *Session) ExpectedReward(a int) (float64, error) {
	return s.engine.Model().ExpectedReward(a, s.belief)
}

func (s *Session) ActionName(a int) (string, error) { return s.Model().Actions.Name(a) }

func (s *Session) ActionIndex(name string) (int, error) { return s.Model().Actions.Index(name) }

func (s *Session) ObservationIndex(name string) (int, error) {
	return s.Model().Observations.Index(name)
}

func (s *Session) ObservationName(o int) (string, error) { return s.Model().Observations.Name(o) }

func (s *Session) StateName(i int) (string, error) { return s.Model().States.Name(i) }

func (s *Session) tag(ctx context.Context) context.Context {
	if s.id == "" {
		return ctx
	}
	return runtime.WithSessionID(ctx, s.id)
}
