package validator

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/pomdp/pkg/domain"
)

// DefaultTolerance is the allowed deviation of a probability row sum from 1.
const DefaultTolerance = 1e-6

// Issue is a single defect found in a model.
type Issue struct {
	Table  string // "T" or "O"
	Action string
	State  string
	Detail string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s(%s, %s): %s", i.Table, i.Action, i.State, i.Detail)
}

// Validate reports every transition row T(a, s, .) and every observation row
// O(a, s', .) that is incomplete, holds a value outside [0,1], or does not
// sum to 1 within tol. Rewards are not checked.
func Validate(m *domain.Model, tol float64) []Issue {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	var issues []Issue
	actions := m.Actions.Names()
	states := m.States.Names()

	for a, aName := range actions {
		for s, sName := range states {
			issues = append(issues, checkRow("T", aName, sName, m.States, tol, func(j int) (float64, bool) {
				return m.T.At(a, s, j)
			})...)
		}
		for s, sName := range states {
			issues = append(issues, checkRow("O", aName, sName, m.Observations, tol, func(j int) (float64, bool) {
				return m.Z.At(a, s, j)
			})...)
		}
	}
	return issues
}

func checkRow(table, action, state string, cols domain.Space, tol float64, at func(int) (float64, bool)) []Issue {
	var issues []Issue
	issue := func(format string, args ...any) {
		issues = append(issues, Issue{Table: table, Action: action, State: state, Detail: fmt.Sprintf(format, args...)})
	}

	var missing []string
	sum := 0.0
	for j := 0; j < cols.Len(); j++ {
		v, ok := at(j)
		if !ok {
			name, _ := cols.Name(j)
			missing = append(missing, name)
			continue
		}
		if v < 0 || v > 1 || math.IsNaN(v) {
			name, _ := cols.Name(j)
			issue("probability %g for %s is outside [0,1]", v, name)
		}
		sum += v
	}

	switch {
	case len(missing) == cols.Len():
		issue("row is undefined")
	case len(missing) > 0:
		issue("undefined for %s", strings.Join(missing, ", "))
	case math.Abs(sum-1) > tol:
		issue("row sums to %g", sum)
	}
	return issues
}

// Check is Validate folded into a single error, or nil for a clean model.
func Check(m *domain.Model, tol float64) error {
	issues := Validate(m, tol)
	if len(issues) == 0 {
		return nil
	}
	lines := make([]string, len(issues))
	for i, is := range issues {
		lines[i] = is.String()
	}
	return fmt.Errorf("%w: found %d issues:\n- %s", domain.ErrNumeric, len(issues), strings.Join(lines, "\n- "))
}
