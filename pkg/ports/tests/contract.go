package tests

import (
	"testing"

	"github.com/aretw0/pomdp/pkg/ports"
)

// SourceLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.SourceLoader.
func SourceLoaderContractTest(t *testing.T, loader ports.SourceLoader, setupData map[string][]byte) {
	t.Helper()

	// 1. Test Read (Success)
	t.Run("Read_Success", func(t *testing.T) {
		for name, expectedContent := range setupData {
			content, err := loader.Read(name)
			if err != nil {
				t.Fatalf("unexpected error reading %s: %v", name, err)
			}
			if string(content) != string(expectedContent) {
				t.Errorf("content mismatch for %s. got %q, want %q", name, content, expectedContent)
			}
		}
	})

	// 2. Test Read (NotFound)
	t.Run("Read_NotFound", func(t *testing.T) {
		_, err := loader.Read("non-existent-document")
		if err == nil {
			t.Error("expected error for non-existent document, got nil")
		}
	})

	// 3. Test List
	t.Run("List", func(t *testing.T) {
		names, err := loader.List()
		if err != nil {
			t.Fatalf("unexpected error listing documents: %v", err)
		}

		if len(names) != len(setupData) {
			t.Errorf("expected %d documents, got %d", len(setupData), len(names))
		}

		lookup := make(map[string]bool)
		for _, name := range names {
			lookup[name] = true
		}

		for name := range setupData {
			if !lookup[name] {
				t.Errorf("document %s missing from list", name)
			}
		}
	})
}
