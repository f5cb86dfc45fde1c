package memory

import (
	"fmt"
	"sort"
)

// Loader implements ports.SourceLoader using an in-memory map.
type Loader struct {
	docs map[string][]byte
}

// NewLoader creates a new in-memory Loader with the provided documents.
func NewLoader(data map[string]string) *Loader {
	docs := make(map[string][]byte)
	for k, v := range data {
		docs[k] = []byte(v)
	}
	return &Loader{
		docs: docs,
	}
}

// Read returns the raw content of a document by name.
func (l *Loader) Read(name string) ([]byte, error) {
	content, ok := l.docs[name]
	if !ok {
		return nil, fmt.Errorf("document not found: %s", name)
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// List returns all available document names.
func (l *Loader) List() ([]string, error) {
	keys := make([]string, 0, len(l.docs))
	for k := range l.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
