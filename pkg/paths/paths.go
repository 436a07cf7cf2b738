// Package paths provides centralized path handling for styledot.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/styledot/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for styledot
	EnvConfigDir = "STYLEDOT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for styledot
	EnvStateDir = "STYLEDOT_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for styledot-specific files
	AppDirName = "styledot"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "styledot.toml"

	// LogFileName is the name of the log file
	LogFileName = "styledot.log"
)

// stylesheetExtensions are tried, in order, when locating a sheet by bare
// name.
var stylesheetExtensions = []string{".yaml", ".yml", ".json", ".toml", ".xml"}

// ConfigDir returns the styledot configuration directory, honoring the
// STYLEDOT_CONFIG_DIR override.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the styledot state directory, honoring the
// STYLEDOT_STATE_DIR override.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ConfigFilePath returns the path of the configuration file.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// LogFilePath returns the path of the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// FindStylesheet locates a stylesheet document. An argument with an
// extension is treated as a file path and only checked for existence. A
// bare name is tried with the known extensions in the current directory
// first, then in the config directory.
func FindStylesheet(name string) (string, error) {
	if filepath.Ext(name) != "" {
		if _, err := os.Stat(name); err != nil {
			return "", errors.Wrapf(err, errors.ErrNotFound,
				"stylesheet %s not found", name)
		}
		return name, nil
	}

	for _, dir := range []string{".", ConfigDir()} {
		for _, ext := range stylesheetExtensions {
			candidate := filepath.Join(dir, name+ext)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", errors.Newf(errors.ErrNotFound,
		"no stylesheet named %q in . or %s", name, ConfigDir())
}
