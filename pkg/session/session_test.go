package session_test

import (
	"context"
	"testing"

	"github.com/aretw0/pomdp/internal/compiler"
	"github.com/aretw0/pomdp/internal/runtime"
	"github.com/aretw0/pomdp/internal/testutils"
	"github.com/aretw0/pomdp/pkg/domain"
	"github.com/aretw0/pomdp/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voicemailEngine(t *testing.T, opts ...runtime.EngineOption) *runtime.Engine {
	t.Helper()
	p := compiler.NewParser()
	model, err := p.ParseModel(testutils.ReadFixture(t, "voicemail.pomdp"))
	require.NoError(t, err)
	policy, err := p.ParsePolicy(testutils.ReadFixture(t, "voicemail.policy"))
	require.NoError(t, err)
	return runtime.NewEngine(model, policy, opts...)
}

func TestSession_VoicemailScenario(t *testing.T) {
	ctx := context.Background()
	s, err := session.New(voicemailEngine(t), []float64{0.65, 0.35})
	require.NoError(t, err)

	observations := []string{"hearDelete", "hearSave", "hearSave"}
	wantBeliefs := [][]float64{{0.35, 0.65}, {0.59, 0.41}, {0.79, 0.21}}

	var actions []string
	var values []float64
	for step := 0; ; step++ {
		d, err := s.BestAction(ctx)
		require.NoError(t, err)
		name, err := s.ActionName(d.Action)
		require.NoError(t, err)
		actions = append(actions, name)
		values = append(values, d.Value)

		if name != "ask" {
			break
		}
		require.Less(t, step, len(observations), "asked more often than expected")
		o, err := s.ObservationIndex(observations[step])
		require.NoError(t, err)
		require.NoError(t, s.Update(ctx, d.Action, o))
		assert.InDeltaSlice(t, wantBeliefs[step], s.Belief(), 0.01, "belief after step %d", step)
	}

	assert.Equal(t, []string{"ask", "ask", "ask", "doSave"}, actions)
	assert.InDeltaSlice(t, []float64{3.46, 2.91, 3.13, 5.14}, values, 0.01)

	// Choosing a terminal action does not reset the belief by itself.
	assert.InDeltaSlice(t, []float64{0.79, 0.21}, s.Belief(), 0.01)

	doSave, err := s.ActionIndex("doSave")
	require.NoError(t, err)
	require.NoError(t, s.Update(ctx, doSave, 0))
	assert.InDeltaSlice(t, []float64{0.65, 0.35}, s.Belief(), 1e-9)
}

func TestSession_Lookups(t *testing.T) {
	s, err := session.New(voicemailEngine(t), []float64{0.5, 0.5})
	require.NoError(t, err)

	name, err := s.ActionName(2)
	require.NoError(t, err)
	assert.Equal(t, "doDelete", name)

	name, err = s.StateName(1)
	require.NoError(t, err)
	assert.Equal(t, "delete", name)

	name, err = s.ObservationName(0)
	require.NoError(t, err)
	assert.Equal(t, "hearSave", name)

	_, err = s.ObservationIndex("hearNothing")
	assert.ErrorIs(t, err, domain.ErrLookup)
	_, err = s.ActionIndex("doNothing")
	assert.ErrorIs(t, err, domain.ErrLookup)
	_, err = s.ActionName(3)
	assert.ErrorIs(t, err, domain.ErrLookup)
}

func TestSession_BeliefIsACopy(t *testing.T) {
	s, err := session.New(voicemailEngine(t), []float64{0.5, 0.5})
	require.NoError(t, err)

	b := s.Belief()
	b[0] = 1
	assert.Equal(t, domain.Belief{0.5, 0.5}, s.Belief())
}

func TestSession_PriorValidation(t *testing.T) {
	eng := voicemailEngine(t)

	_, err := session.New(eng, []float64{1})
	assert.ErrorIs(t, err, domain.ErrDimension)

	_, err = session.New(eng, []float64{0.7, 0.7})
	assert.ErrorIs(t, err, domain.ErrNumeric)

	_, err = session.New(eng, []float64{1.5, -0.5})
	assert.ErrorIs(t, err, domain.ErrNumeric)

	s, err := session.New(eng, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.Error(t, s.Reset([]float64{0.2}))
	assert.Equal(t, domain.Belief{0.5, 0.5}, s.Belief(), "failed reset keeps belief")

	require.NoError(t, s.Reset([]float64{0.9, 0.1}))
	assert.Equal(t, domain.Belief{0.9, 0.1}, s.Belief())
}

func TestSession_FailedUpdateKeepsBelief(t *testing.T) {
	s, err := session.New(voicemailEngine(t), []float64{0.5, 0.5})
	require.NoError(t, err)

	err = s.Update(context.Background(), 7, 0)
	assert.ErrorIs(t, err, domain.ErrLookup)
	assert.Equal(t, domain.Belief{0.5, 0.5}, s.Belief())
}

func TestSession_ValuesAndReward(t *testing.T) {
	s, err := session.New(voicemailEngine(t), []float64{0.65, 0.35})
	require.NoError(t, err)

	values, err := s.Values()
	require.NoError(t, err)
	require.Len(t, values, 4)
	assert.InDelta(t, 3.46, values[2], 0.01)

	r, err := s.ExpectedReward(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.65*5+0.35*-10, r, 1e-9)
}

func TestSession_EventsCarryID(t *testing.T) {
	var got []string
	eng := voicemailEngine(t, runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnActionSelected: func(_ context.Context, e *domain.ActionEvent) {
			got = append(got, e.SessionID)
		},
	}))
	s, err := session.New(eng, []float64{0.5, 0.5}, session.WithID("line-1"))
	require.NoError(t, err)
	assert.Equal(t, "line-1", s.ID())

	_, err = s.BestAction(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"line-1"}, got)
}
