// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/styledot/pkg/paths"
)

// Isolate points the config and state lookups at fresh temp dirs so tests
// never read or write the invoking user's files. It returns the config
// dir for tests that plant stylesheets or config files there.
func Isolate(t *testing.T) string {
	t.Helper()
	configDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, configDir)
	t.Setenv(paths.EnvStateDir, t.TempDir())
	return configDir
}

// WriteSheet writes a stylesheet document into dir and returns its path.
func WriteSheet(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write stylesheet %s: %v", name, err)
	}
	return path
}
