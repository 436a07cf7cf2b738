// Package config loads styledot's application configuration. Settings
// layer in order: embedded defaults, the user configuration file, then
// STYLEDOT_* environment variables, then explicit overrides. Later layers
// win.
//
// Environment variables use "__" between nesting levels so that key names
// may themselves contain underscores: STYLEDOT_STYLES__VALIDATE_KEYS
// addresses styles.validate_keys.
package config

import (
	"github.com/arthur-debert/styledot/pkg/styles"
)

// Config is the full application configuration.
type Config struct {
	Styles  StylesConfig  `koanf:"styles"`
	Resolve ResolveConfig `koanf:"resolve"`
	Output  OutputConfig  `koanf:"output"`
	Logging LoggingConfig `koanf:"logging"`
}

// StylesConfig controls how sheets are constructed.
type StylesConfig struct {
	ValidateKeys bool `koanf:"validate_keys"`
	SortStates   bool `koanf:"sort_states"`
}

// ResolveConfig controls query resolution defaults.
type ResolveConfig struct {
	// Hierarchy enables the leaf-segment fallback by default.
	Hierarchy bool `koanf:"hierarchy"`
}

// OutputConfig controls CLI rendering defaults.
type OutputConfig struct {
	// Format is one of auto, term, text or json.
	Format string `koanf:"format"`
	// Color allows rich terminal output. When false, auto-detected
	// terminal rendering degrades to plain text.
	Color bool `koanf:"color"`
}

// LoggingConfig controls diagnostic log output.
type LoggingConfig struct {
	// File mirrors log output into the XDG state dir.
	File bool `koanf:"file"`
}

// SheetOptions translates the styles settings into construction options.
func (c StylesConfig) SheetOptions() []styles.Option {
	return []styles.Option{
		styles.WithKeyValidation(c.ValidateKeys),
		styles.WithStateSorting(c.SortStates),
	}
}
