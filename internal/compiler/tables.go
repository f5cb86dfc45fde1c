package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/pomdp/pkg/domain"
)

const (
	wildcard   = "*"
	kwIdentity = "identity"
	kwUniform  = "uniform"
)

type axis int

const (
	axisAction axis = iota
	axisState
	axisObservation
)

// tableKind describes one of the T, O, R tables: the space behind each index
// position and whether the identity/uniform shorthands apply.
type tableKind struct {
	name     string
	axes     []axis
	tensor   func(*domain.Model) *domain.Tensor
	keywords bool
}

var (
	transitionTable = tableKind{
		name:     keyTransition,
		axes:     []axis{axisAction, axisState, axisState},
		tensor:   func(m *domain.Model) *domain.Tensor { return m.T },
		keywords: true,
	}
	observationTable = tableKind{
		name:     keyObservation,
		axes:     []axis{axisAction, axisState, axisObservation},
		tensor:   func(m *domain.Model) *domain.Tensor { return m.Z },
		keywords: true,
	}
	rewardTable = tableKind{
		name:   keyReward,
		axes:   []axis{axisAction, axisState, axisState, axisObservation},
		tensor: func(m *domain.Model) *domain.Tensor { return m.R },
	}
)

func (st *envState) space(a axis) domain.Space {
	switch a {
	case axisAction:
		return st.model.Actions
	case axisState:
		return st.model.States
	default:
		return st.model.Observations
	}
}

// parseTable dispatches on the number of fields after the keyword. With r the
// table rank:
//
//	r+1  indices and value inline
//	r    indices, value on the next line
//	r-1  all but the last index, a row over the last axis on the next line
//	r-2  all but the last two indices, identity, uniform or a full matrix
func (st *envState) parseTable(line Line, f []string, kind tableKind) error {
	if err := st.ensureModel(line); err != nil {
		return err
	}
	r := len(kind.axes)

	switch len(f) {
	case r + 1:
		v, err := st.number(line, f[r])
		if err != nil {
			return err
		}
		return st.assignScalar(line, kind, f[:r], v)

	case r:
		nl, err := st.next(line)
		if err != nil {
			return err
		}
		tokens := strings.Fields(nl.Text)
		if len(tokens) != 1 {
			return st.fail(nl, fmt.Errorf("expected a single value for %s entry", kind.name))
		}
		v, err := st.number(nl, tokens[0])
		if err != nil {
			return err
		}
		return st.assignScalar(line, kind, f, v)

	case r - 1:
		return st.parseRowEntry(line, kind, f)

	case r - 2:
		return st.parseMatrixEntry(line, kind, f)

	default:
		return st.fail(line, fmt.Errorf("cannot parse %s entry with %d fields", kind.name, len(f)))
	}
}

// resolve turns index tokens into the list of concrete indices each stands for.
func (st *envState) resolve(line Line, kind tableKind, tokens []string) ([][]int, error) {
	lists := make([][]int, len(tokens))
	for i, tok := range tokens {
		sp := st.space(kind.axes[i])
		if tok == wildcard {
			lists[i] = allIndices(sp.Len())
			continue
		}
		idx, err := sp.Index(tok)
		if err != nil {
			return nil, st.fail(line, err)
		}
		lists[i] = []int{idx}
	}
	return lists, nil
}

func (st *envState) assignScalar(line Line, kind tableKind, tokens []string, v float64) error {
	lists, err := st.resolve(line, kind, tokens)
	if err != nil {
		return err
	}
	t := kind.tensor(st.model)
	return product(lists, func(idx []int) error {
		return st.set(line, t, v, idx)
	})
}

func (st *envState) parseRowEntry(line Line, kind tableKind, prefix []string) error {
	lists, err := st.resolve(line, kind, prefix)
	if err != nil {
		return err
	}
	cols := st.space(kind.axes[len(kind.axes)-1]).Len()

	nl, err := st.next(line)
	if err != nil {
		return err
	}
	var row []float64
	if kind.keywords && nl.Text == kwUniform {
		row = uniformRow(cols)
	} else if row, err = st.row(nl, cols); err != nil {
		return err
	}

	t := kind.tensor(st.model)
	return product(lists, func(idx []int) error {
		for j, v := range row {
			if err := st.set(line, t, v, idx, j); err != nil {
				return err
			}
		}
		return nil
	})
}

func (st *envState) parseMatrixEntry(line Line, kind tableKind, prefix []string) error {
	lists, err := st.resolve(line, kind, prefix)
	if err != nil {
		return err
	}
	r := len(kind.axes)
	rows := st.space(kind.axes[r-2]).Len()
	cols := st.space(kind.axes[r-1]).Len()

	first, err := st.next(line)
	if err != nil {
		return err
	}

	matrix := make([][]float64, rows)
	switch {
	case first.Text == kwIdentity || first.Text == kwUniform:
		if !kind.keywords {
			return st.fail(first, fmt.Errorf("%s does not accept %q", kind.name, first.Text))
		}
		for i := range matrix {
			if first.Text == kwUniform {
				matrix[i] = uniformRow(cols)
				continue
			}
			matrix[i] = make([]float64, cols)
			if i < cols {
				matrix[i][i] = 1
			}
		}
	default:
		cur := first
		for i := range matrix {
			if i > 0 {
				if cur, err = st.next(line); err != nil {
					return err
				}
			}
			if matrix[i], err = st.row(cur, cols); err != nil {
				return err
			}
		}
	}

	t := kind.tensor(st.model)
	return product(lists, func(idx []int) error {
		for i, row := range matrix {
			for j, v := range row {
				if err := st.set(line, t, v, idx, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (st *envState) set(line Line, t *domain.Tensor, v float64, idx []int, tail ...int) error {
	cell := make([]int, 0, len(idx)+len(tail))
	cell = append(cell, idx...)
	cell = append(cell, tail...)
	if err := t.Set(v, cell...); err != nil {
		return st.fail(line, err)
	}
	return nil
}

func (st *envState) number(line Line, tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, st.fail(line, fmt.Errorf("invalid number %q", tok))
	}
	return v, nil
}

// row parses a line of exactly want numbers.
func (st *envState) row(line Line, want int) ([]float64, error) {
	tokens := strings.Fields(line.Text)
	if len(tokens) != want {
		return nil, st.fail(line, fmt.Errorf("expected %d values, got %d", want, len(tokens)))
	}
	out := make([]float64, want)
	for i, tok := range tokens {
		v, err := st.number(line, tok)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func uniformRow(n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = 1.0 / float64(n)
	}
	return row
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// product calls fn for every tuple of the cross product of lists, with the
// first list varying slowest. The idx slice is reused between calls.
func product(lists [][]int, fn func(idx []int) error) error {
	for _, l := range lists {
		if len(l) == 0 {
			return nil
		}
	}
	pos := make([]int, len(lists))
	idx := make([]int, len(lists))
	for {
		for i := range lists {
			idx[i] = lists[i][pos[i]]
		}
		if err := fn(idx); err != nil {
			return err
		}
		k := len(lists) - 1
		for ; k >= 0; k-- {
			pos[k]++
			if pos[k] < len(lists[k]) {
				break
			}
			pos[k] = 0
		}
		if k < 0 {
			return nil
		}
	}
}
