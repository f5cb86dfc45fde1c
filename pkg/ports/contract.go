package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/pomdp/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunBeliefStoreContract runs a suite of tests to verify that a BeliefStore implementation
// adheres to the defined interface contract.
func RunBeliefStoreContract(t *testing.T, store BeliefStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		belief := domain.Belief{0.65, 0.35}

		err := store.Save(ctx, sessionID, belief)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, belief, loaded)
	})

	t.Run("Isolation", func(t *testing.T) {
		belief := domain.Belief{0.5, 0.5}
		require.NoError(t, store.Save(ctx, sessionID, belief))

		// Mutating the caller's slice must not leak into the store.
		belief[0] = 1
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 0.5, loaded[0])

		// Nor must mutating what Load returned.
		loaded[1] = 0
		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 0.5, again[1])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.Belief{1, 0})
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.Belief{1, 0})
		_ = store.Save(ctx, id2, domain.Belief{0, 1})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
