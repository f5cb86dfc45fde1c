package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStateModel(t *testing.T) *Model {
	t.Helper()
	states, err := NewSpace("state", []string{"save", "delete"})
	require.NoError(t, err)
	actions, err := NewSpace("action", []string{"doSave"})
	require.NoError(t, err)
	obs := NewCountedSpace("observation", 1)

	m := NewModel(0.95, ValuesReward, states, actions, obs)
	for s := 0; s < 2; s++ {
		for next := 0; next < 2; next++ {
			require.NoError(t, m.T.Set(0.5, 0, s, next))
			require.NoError(t, m.R.Set(float64(5-15*s), 0, s, next, 0))
		}
		require.NoError(t, m.Z.Set(1, 0, s, 0))
	}
	return m
}

func TestModel_Accessors(t *testing.T) {
	m := twoStateModel(t)
	p, err := m.Transition(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, p)

	r, err := m.Reward(0, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, -10.0, r)

	_, err = m.Transition(1, 0, 0)
	assert.ErrorIs(t, err, ErrLookup)
}

func TestModel_ExpectedReward(t *testing.T) {
	m := twoStateModel(t)
	r, err := m.ExpectedReward(0, Belief{0.65, 0.35})
	require.NoError(t, err)
	assert.InDelta(t, 0.65*5+0.35*-10, r, 1e-9)

	_, err = m.ExpectedReward(0, Belief{1})
	assert.ErrorIs(t, err, ErrDimension)
}
