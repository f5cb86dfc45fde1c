package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/pomdp/internal/logging"
	"github.com/aretw0/pomdp/internal/runtime"
	"github.com/aretw0/pomdp/pkg/domain"
	"github.com/aretw0/pomdp/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager runs many belief trajectories over one shared engine.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	engine ports.BeliefEngine
	store  ports.BeliefStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a Manager that keeps beliefs in store.
func NewManager(engine ports.BeliefEngine, store ports.BeliefStore, opts ...Option) *Manager {
	m := &Manager{
		engine: engine,
		store:  store,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// WithLock executes fn while holding the lock for the session.
// The context passed to fn carries the session ID.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	return fn(runtime.WithSessionID(ctx, sessionID))
}

// Start sets the belief of sessionID to prior, creating the session if needed.
// Starting an existing session resets it.
func (m *Manager) Start(ctx context.Context, sessionID string, prior []float64) error {
	b, err := domain.NewBelief(prior, m.engine.Model().States.Len())
	if err != nil {
		return err
	}
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		if err := m.store.Save(ctx, sessionID, b); err != nil {
			return fmt.Errorf("failed to initialize session: %w", err)
		}
		m.logger.Debug("session started", "session_id", sessionID)
		return nil
	})
}

// LoadOrStart returns the belief of sessionID, starting it at prior if it does not exist.
func (m *Manager) LoadOrStart(ctx context.Context, sessionID string, prior []float64) (domain.Belief, error) {
	var belief domain.Belief
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		belief, err = m.store.Load(ctx, sessionID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return fmt.Errorf("failed to check session existence: %w", err)
		}

		belief, err = domain.NewBelief(prior, m.engine.Model().States.Len())
		if err != nil {
			return err
		}
		if err := m.store.Save(ctx, sessionID, belief); err != nil {
			return fmt.Errorf("failed to initialize session: %w", err)
		}
		return nil
	})
	return belief, err
}

// Belief returns the current belief of sessionID.
func (m *Manager) Belief(ctx context.Context, sessionID string) (domain.Belief, error) {
	var belief domain.Belief
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		belief, err = m.store.Load(ctx, sessionID)
		return err
	})
	return belief, err
}

// BestAction evaluates the policy against the current belief of sessionID.
func (m *Manager) BestAction(ctx context.Context, sessionID string) (domain.Decision, error) {
	var d domain.Decision
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		belief, err := m.store.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		d, err = m.engine.BestAction(ctx, belief)
		return err
	})
	return d, err
}

// Update applies action a and observation o to sessionID and stores the posterior.
// The read-modify-write runs under the session lock, so concurrent updates
// to the same session are applied one after another.
func (m *Manager) Update(ctx context.Context, sessionID string, a, o int) (domain.Belief, error) {
	var posterior domain.Belief
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		prior, err := m.store.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		posterior, err = m.engine.Update(ctx, prior, a, o)
		if err != nil {
			return err
		}
		return m.store.Save(ctx, sessionID, posterior)
	})
	if err != nil {
		m.logger.Warn("belief update failed", "session_id", sessionID, "err", err)
		return nil, err
	}
	return posterior, nil
}

// Delete removes the session from the store.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Delete(ctx, sessionID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying belief store.
func (m *Manager) Store() ports.BeliefStore {
	return m.store
}
