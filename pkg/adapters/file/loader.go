package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Loader implements ports.SourceLoader over the local filesystem.
// Relative names are resolved against BasePath; absolute names are read as-is.
type Loader struct {
	BasePath string
}

// NewLoader creates a Loader rooted at basePath.
// If basePath is empty, it defaults to the current directory.
func NewLoader(basePath string) *Loader {
	if basePath == "" {
		basePath = "."
	}
	return &Loader{BasePath: basePath}
}

func (l *Loader) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.BasePath, name)
}

// Read returns the full content of the file. This is the only I/O the runtime performs.
func (l *Loader) Read(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("document name cannot be empty")
	}
	data, err := os.ReadFile(l.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// List returns the regular files directly under BasePath.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.BasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", l.BasePath, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
