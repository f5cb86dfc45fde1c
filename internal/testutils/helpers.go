package testutils

import (
	"os"
	"path/filepath"
	goruntime "runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// Testdata returns the absolute path of a file under the module's testdata
// directory, independent of the package the test runs in.
func Testdata(name string) string {
	_, file, _, _ := goruntime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
}

// ReadFixture returns the content of a testdata file.
// It fails the test immediately on error.
func ReadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(Testdata(name))
	require.NoError(t, err, "Failed to read fixture %s", name)
	return data
}

// WriteTemp writes content to name inside a fresh temporary directory and
// returns the absolute path of the file.
func WriteTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", name)
	return path
}
