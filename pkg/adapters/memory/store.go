package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/pomdp/pkg/domain"
)

// Store implements ports.BeliefStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Belief
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Belief),
	}
}

// Save records a copy of the belief.
func (s *Store) Save(ctx context.Context, sessionID string, belief domain.Belief) error {
	copied := belief.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = copied
	return nil
}

// Load retrieves a copy of the belief.
func (s *Store) Load(ctx context.Context, sessionID string) (domain.Belief, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	belief, ok := s.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	// Copy on read so callers can't mutate store state through the slice
	return belief.Clone(), nil
}

// Delete removes the belief.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns active sessions in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	sort.Strings(sessions)
	return sessions, nil
}
