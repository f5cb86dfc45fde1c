package compiler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aretw0/pomdp/pkg/domain"
)

// Recognized leading keywords of an environment file.
const (
	keyDiscount     = "discount"
	keyValues       = "values"
	keyStates       = "states"
	keyActions      = "actions"
	keyObservations = "observations"
	keyTransition   = "T"
	keyObservation  = "O"
	keyReward       = "R"
)

var (
	errIncomplete = errors.New("incomplete model")
	errEndOfInput = errors.New("unexpected end of input")
)

// Parser is responsible for converting raw documents into domain objects.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseModel reads an environment file and returns the fully expanded model.
func (p *Parser) ParseModel(data []byte) (*domain.Model, error) {
	st := &envState{lines: Lines(data)}
	for st.pos < len(st.lines) {
		if err := st.step(); err != nil {
			return nil, err
		}
	}
	return st.finish()
}

// envState holds the cursor and partially built model while parsing.
type envState struct {
	lines []Line
	pos   int

	discount    float64
	hasDiscount bool
	values      string

	states       *domain.Space
	actions      *domain.Space
	observations *domain.Space

	model *domain.Model // allocated on the first table line
}

func (st *envState) fail(line Line, err error) error {
	return &domain.ParseError{Line: line.Num, Content: line.Text, Err: err}
}

// next consumes the line following cur.
func (st *envState) next(cur Line) (Line, error) {
	if st.pos >= len(st.lines) {
		return Line{}, st.fail(cur, errEndOfInput)
	}
	l := st.lines[st.pos]
	st.pos++
	return l, nil
}

func (st *envState) step() error {
	line := st.lines[st.pos]
	st.pos++
	f := fields(line.Text)
	if len(f) == 0 {
		return st.fail(line, fmt.Errorf("unrecognized line"))
	}

	switch f[0] {
	case keyDiscount:
		return st.parseDiscount(line, f[1:])
	case keyValues:
		if len(f) != 2 {
			return st.fail(line, fmt.Errorf("values expects one tag"))
		}
		st.values = f[1]
		return nil
	case keyStates:
		return st.parseSpace(line, f[1:], &st.states, "state")
	case keyActions:
		return st.parseSpace(line, f[1:], &st.actions, "action")
	case keyObservations:
		return st.parseSpace(line, f[1:], &st.observations, "observation")
	case keyTransition:
		return st.parseTable(line, f[1:], transitionTable)
	case keyObservation:
		return st.parseTable(line, f[1:], observationTable)
	case keyReward:
		return st.parseTable(line, f[1:], rewardTable)
	default:
		return st.fail(line, fmt.Errorf("unrecognized keyword %q", f[0]))
	}
}

func (st *envState) parseDiscount(line Line, rest []string) error {
	if len(rest) != 1 {
		return st.fail(line, fmt.Errorf("discount expects one value"))
	}
	d, err := strconv.ParseFloat(rest[0], 64)
	if err != nil {
		return st.fail(line, fmt.Errorf("invalid discount: %w", err))
	}
	if d <= 0 || d > 1 {
		return st.fail(line, fmt.Errorf("discount %v outside (0, 1]", d))
	}
	st.discount = d
	st.hasDiscount = true
	return nil
}

// parseSpace reads a name list, or a single integer count expanded to "0".."n-1".
func (st *envState) parseSpace(line Line, rest []string, dst **domain.Space, kind string) error {
	if st.model != nil {
		return st.fail(line, fmt.Errorf("%s declared after the first table entry", kind))
	}
	if *dst != nil {
		return st.fail(line, fmt.Errorf("%s list declared twice", kind))
	}
	if len(rest) == 0 {
		return st.fail(line, fmt.Errorf("empty %s list", kind))
	}

	if len(rest) == 1 {
		if n, err := strconv.Atoi(rest[0]); err == nil {
			if n <= 0 {
				return st.fail(line, fmt.Errorf("%s count must be positive, got %d", kind, n))
			}
			if err := st.checkSize(dst, n); err != nil {
				return st.fail(line, err)
			}
			s := domain.NewCountedSpace(kind, n)
			*dst = &s
			return nil
		}
	}

	for _, name := range rest {
		if name == wildcard {
			return st.fail(line, fmt.Errorf("%q is reserved and cannot name a %s", wildcard, kind))
		}
	}
	if err := st.checkSize(dst, len(rest)); err != nil {
		return st.fail(line, err)
	}
	s, err := domain.NewSpace(kind, rest)
	if err != nil {
		return st.fail(line, err)
	}
	*dst = &s
	return nil
}

// ensureModel allocates the tables once every space is known.
func (st *envState) ensureModel(line Line) error {
	if st.model != nil {
		return nil
	}
	var missing []string
	if st.states == nil {
		missing = append(missing, keyStates)
	}
	if st.actions == nil {
		missing = append(missing, keyActions)
	}
	if st.observations == nil {
		missing = append(missing, keyObservations)
	}
	if len(missing) > 0 {
		return st.fail(line, fmt.Errorf("table entry before %v declared", missing))
	}
	st.model = domain.NewModel(st.discount, st.values, *st.states, *st.actions, *st.observations)
	return nil
}

// checkSize rejects a declaration of n names into dst when the reward table
// would grow too large to allocate. Spaces not yet declared count as one.
func (st *envState) checkSize(dst **domain.Space, n int) error {
	size := func(sp **domain.Space) int {
		switch {
		case sp == dst:
			return n
		case *sp == nil:
			return 1
		}
		return (*sp).Len()
	}
	nS := size(&st.states)
	_, err := domain.TableCells(size(&st.actions), nS, nS, size(&st.observations))
	return err
}

func (st *envState) finish() (*domain.Model, error) {
	var missing []string
	if !st.hasDiscount {
		missing = append(missing, keyDiscount)
	}
	if st.states == nil {
		missing = append(missing, keyStates)
	}
	if st.actions == nil {
		missing = append(missing, keyActions)
	}
	if st.observations == nil {
		missing = append(missing, keyObservations)
	}
	if len(missing) > 0 {
		return nil, &domain.ParseError{Err: fmt.Errorf("%w: missing %v", errIncomplete, missing)}
	}

	if st.model == nil {
		st.model = domain.NewModel(st.discount, st.values, *st.states, *st.actions, *st.observations)
	}
	// discount and values may legally follow the tables.
	st.model.Discount = st.discount
	st.model.Values = st.values
	if st.model.Values == "" {
		st.model.Values = domain.ValuesReward
	}
	return st.model, nil
}
