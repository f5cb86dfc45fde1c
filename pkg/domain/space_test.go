package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpace_Lookup(t *testing.T) {
	s, err := NewSpace("state", []string{"heavy", "light", "novel"})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	idx, err := s.Index("light")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	name, err := s.Name(2)
	require.NoError(t, err)
	assert.Equal(t, "novel", name)

	_, err = s.Index("missing")
	assert.ErrorIs(t, err, ErrLookup)
	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "state", lookupErr.Kind)
	assert.Equal(t, "missing", lookupErr.Name)

	_, err = s.Name(3)
	assert.ErrorIs(t, err, ErrLookup)
	_, err = s.Name(-1)
	assert.ErrorIs(t, err, ErrLookup)
}

func TestSpace_RejectsDuplicates(t *testing.T) {
	_, err := NewSpace("action", []string{"ask", "ask"})
	assert.Error(t, err)
}

func TestSpace_Counted(t *testing.T) {
	s := NewCountedSpace("observation", 3)
	assert.Equal(t, []string{"0", "1", "2"}, s.Names())
	idx, err := s.Index("2")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestSpace_NamesIsCopy(t *testing.T) {
	s, err := NewSpace("state", []string{"a", "b"})
	require.NoError(t, err)
	names := s.Names()
	names[0] = "z"
	got, _ := s.Name(0)
	assert.Equal(t, "a", got)
}
