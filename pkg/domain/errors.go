package domain

import (
	"errors"
	"fmt"
)

// ErrParse is returned when an environment or policy document cannot be parsed.
var ErrParse = errors.New("parse error")

// ErrLookup is returned when a state, action or observation (by name or index)
// does not exist, or when a table cell was never assigned.
var ErrLookup = errors.New("lookup error")

// ErrNumeric is returned when a belief cannot be normalized.
var ErrNumeric = errors.New("numeric error")

// ErrDimension is returned when a vector length does not match the state space,
// or when a table would exceed MaxTableCells.
var ErrDimension = errors.New("dimension mismatch")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ParseError describes a fatal problem at a specific line of a source document.
// It matches ErrParse with errors.Is and unwraps to its cause.
type ParseError struct {
	Line    int    // 1-based line in the source, 0 when not tied to a line
	Content string // The offending line, trimmed
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse error: %v", e.Err)
	}
	return fmt.Sprintf("parse error at line %d (%q): %v", e.Line, e.Content, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// LookupError reports a name or index that does not resolve within a Space.
type LookupError struct {
	Kind string // "state", "action", "observation"
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

func (e *LookupError) Is(target error) bool { return target == ErrLookup }
