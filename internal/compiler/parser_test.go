package compiler_test

import (
	"testing"

	"github.com/aretw0/pomdp/internal/compiler"
	"github.com/aretw0/pomdp/internal/testutils"
	"github.com/aretw0/pomdp/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, name string) *domain.Model {
	t.Helper()
	m, err := compiler.NewParser().ParseModel(testutils.ReadFixture(t, name))
	require.NoError(t, err)
	return m
}

func TestParseModel_Headers(t *testing.T) {
	m := parseFixture(t, "env_parser_test.pomdp")

	assert.Equal(t, 0.95, m.Discount)
	assert.Equal(t, "reward", m.Values)
	assert.Equal(t, []string{"heavy", "light", "novel"}, m.States.Names())
	assert.Equal(t, []string{"ask", "sayHeavy", "sayLight", "sayNovel"}, m.Actions.Names())
	assert.Equal(t, []string{"hearHeavy", "hearLight", "hearNovel"}, m.Observations.Names())
}

func TestParseModel_Transitions(t *testing.T) {
	m := parseFixture(t, "env_parser_test.pomdp")

	// ask is the identity, every other action shares the same rows.
	for a := 0; a < 4; a++ {
		for s := 0; s < 3; s++ {
			for next := 0; next < 3; next++ {
				got, err := m.Transition(a, s, next)
				require.NoError(t, err)
				if a == 0 {
					want := 0.0
					if s == next {
						want = 1
					}
					assert.Equal(t, want, got, "T(%d,%d,%d)", a, s, next)
					continue
				}
				assert.Equal(t, []float64{0.4, 0.4, 0.2}[next], got, "T(%d,%d,%d)", a, s, next)
			}
		}
	}
}

func TestParseModel_Observations(t *testing.T) {
	m := parseFixture(t, "env_parser_test.pomdp")

	ask := [][]float64{
		{0.7, 0.01, 0.29},
		{0.01, 0.7, 0.29},
		{0.1, 0.1, 0.8},
	}
	for a := 0; a < 4; a++ {
		for next := 0; next < 3; next++ {
			for o := 0; o < 3; o++ {
				got, err := m.Observation(a, next, o)
				require.NoError(t, err)
				if a == 0 {
					assert.Equal(t, ask[next][o], got)
				} else {
					assert.Equal(t, 1.0/3.0, got)
				}
			}
		}
	}
}

func TestParseModel_Rewards(t *testing.T) {
	m := parseFixture(t, "env_parser_test.pomdp")

	// by action, then start state; next state and observation are wildcards.
	want := [][]float64{
		{-1, -1, -1},
		{5, -10, -2},
		{-10, 5, -2},
		{-2, -2, 5},
	}
	for a := range want {
		for s := 0; s < 3; s++ {
			for next := 0; next < 3; next++ {
				for o := 0; o < 3; o++ {
					got, err := m.Reward(a, s, next, o)
					require.NoError(t, err)
					assert.Equal(t, want[a][s], got, "R(%d,%d,%d,%d)", a, s, next, o)
				}
			}
		}
	}
	assert.Equal(t, m.R.Size(), m.R.Assigned())
}

func TestParseModel_StochasticRows(t *testing.T) {
	for _, name := range []string{"env_parser_test.pomdp", "voicemail.pomdp"} {
		t.Run(name, func(t *testing.T) {
			m := parseFixture(t, name)
			nS, nO := m.States.Len(), m.Observations.Len()
			for a := 0; a < m.Actions.Len(); a++ {
				for s := 0; s < nS; s++ {
					sumT, sumZ := 0.0, 0.0
					for next := 0; next < nS; next++ {
						p, err := m.Transition(a, s, next)
						require.NoError(t, err)
						sumT += p
					}
					for o := 0; o < nO; o++ {
						p, err := m.Observation(a, s, o)
						require.NoError(t, err)
						sumZ += p
					}
					assert.InDelta(t, 1.0, sumT, 1e-9)
					assert.InDelta(t, 1.0, sumZ, 1e-9)
				}
			}
		})
	}
}

func TestParseModel_CountedSpaces(t *testing.T) {
	src := `
discount: 0.9
states: 3
actions: 2
observations: hit miss
T: * : 0 : 2 1.0
`
	m, err := compiler.NewParser().ParseModel([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, m.States.Names())
	assert.Equal(t, []string{"0", "1"}, m.Actions.Names())
	assert.Equal(t, []string{"hit", "miss"}, m.Observations.Names())
	// values defaults to reward when omitted.
	assert.Equal(t, domain.ValuesReward, m.Values)

	for a := 0; a < 2; a++ {
		p, err := m.Transition(a, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, 1.0, p)
	}
}
