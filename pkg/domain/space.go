package domain

import (
	"fmt"
	"strconv"
)

// Space is an ordered list of unique names. Position in the list is the index
// used by every table in the Model.
type Space struct {
	kind  string
	names []string
	index map[string]int
}

// NewSpace builds a space from literal names. Duplicate names are rejected.
func NewSpace(kind string, names []string) (Space, error) {
	s := Space{
		kind:  kind,
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	copy(s.names, names)
	for i, name := range names {
		if _, dup := s.index[name]; dup {
			return Space{}, fmt.Errorf("duplicate %s name %q", kind, name)
		}
		s.index[name] = i
	}
	return s, nil
}

// NewCountedSpace builds a space of n synthetic names "0".."n-1".
func NewCountedSpace(kind string, n int) Space {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	s, _ := NewSpace(kind, names) // synthetic names are unique
	return s
}

// Kind returns the label given at construction ("state", "action", ...).
func (s Space) Kind() string { return s.kind }

// Len returns the number of names.
func (s Space) Len() int { return len(s.names) }

// Names returns a copy of the ordered names.
func (s Space) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Index resolves a name to its position.
func (s Space) Index(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, &LookupError{Kind: s.kind, Name: name}
	}
	return i, nil
}

// Name resolves a position to its name.
func (s Space) Name(i int) (string, error) {
	if i < 0 || i >= len(s.names) {
		return "", &LookupError{Kind: s.kind, Name: strconv.Itoa(i)}
	}
	return s.names[i], nil
}

// Contains reports whether i is a valid position.
func (s Space) Contains(i int) bool {
	return i >= 0 && i < len(s.names)
}
