// Package testutil provides shared test helpers used across
// integration and unit test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// FixturePath resolves a file under the repository's fixtures/
// directory.
func FixturePath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(RepoRoot(t), "fixtures", name)
}

// WriteJSONFile marshals payload and writes it under dir, returning
// the full path.
func WriteJSONFile(t *testing.T, dir, name string, payload any) string {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
