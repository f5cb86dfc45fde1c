package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/pomdp/internal/runtime"
	"github.com/aretw0/pomdp/pkg/domain"
	"github.com/aretw0/pomdp/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.BeliefEngine = (*runtime.Engine)(nil)

func TestEngine_Hooks(t *testing.T) {
	m := loadModel(t, "voicemail.pomdp")
	p := domain.NewPolicy([]domain.AlphaVector{
		{Action: 0, Values: []float64{1, 1}},
	})

	var beliefEvents []*domain.BeliefEvent
	var actionEvents []*domain.ActionEvent
	hooks := domain.LifecycleHooks{
		OnBeliefUpdate: func(ctx context.Context, e *domain.BeliefEvent) {
			beliefEvents = append(beliefEvents, e)
		},
		OnActionSelected: func(ctx context.Context, e *domain.ActionEvent) {
			actionEvents = append(actionEvents, e)
		},
	}
	eng := runtime.NewEngine(m, p, runtime.WithLifecycleHooks(hooks))
	ctx := runtime.WithSessionID(context.Background(), "caller-42")

	d, err := eng.BestAction(ctx, domain.Belief{0.65, 0.35})
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Value)

	_, err = eng.Update(ctx, domain.Belief{0.65, 0.35}, d.Action, 1)
	require.NoError(t, err)

	require.Len(t, actionEvents, 1)
	assert.Equal(t, domain.EventActionSelected, actionEvents[0].Type)
	assert.Equal(t, "caller-42", actionEvents[0].SessionID)

	require.Len(t, beliefEvents, 1)
	ev := beliefEvents[0]
	assert.Equal(t, domain.EventBeliefUpdate, ev.Type)
	assert.Equal(t, "caller-42", ev.SessionID)
	assert.Equal(t, domain.Belief{0.65, 0.35}, ev.Prior)
	assert.InDelta(t, 0.375, ev.Normalizer, 1e-12)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestEngine_NoHookOnFailure(t *testing.T) {
	m := loadModel(t, "voicemail.pomdp")
	called := false
	eng := runtime.NewEngine(m, domain.NewPolicy(nil), runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnBeliefUpdate:   func(context.Context, *domain.BeliefEvent) { called = true },
		OnActionSelected: func(context.Context, *domain.ActionEvent) { called = true },
	}))

	_, err := eng.BestAction(context.Background(), domain.Belief{0.5, 0.5})
	assert.Error(t, err)
	_, err = eng.Update(context.Background(), domain.Belief{1}, 0, 0)
	assert.Error(t, err)
	assert.False(t, called)
}

func TestSessionIDFrom_Unset(t *testing.T) {
	assert.Equal(t, "", runtime.SessionIDFrom(context.Background()))
}
