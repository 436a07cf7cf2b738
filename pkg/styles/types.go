package styles

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/styledot/pkg/logging"
)

// Query names the element a lookup is for: the full noun path of the
// element, split into segments, plus every state currently active on it.
// State order is irrelevant.
type Query struct {
	Nouns  []string
	States []string
}

// Match is one applicable rule for a query, with its score breakdown.
type Match[T any] struct {
	// Key is the serialized identity of the rule, Path + "|" + state key.
	Key string
	// Path is the rule's noun path as registered.
	Path string
	// States holds the rule's normalized state tags. Empty for an
	// unconstrained rule, ["*"] for the base wildcard.
	States []string
	// Value is the stored payload.
	Value T
	// Score is MatchingNouns*100 + MatchingStates.
	Score int
	// MatchingNouns counts the literal (non-wildcard) path segments.
	MatchingNouns int
	// MatchingStates counts the explicit state tags the rule requires.
	MatchingStates int
}

// Option configures a Sheet at construction time.
type Option func(*sheetOptions)

type sheetOptions struct {
	validateKeys  bool
	sortStates    bool
	logger        zerolog.Logger
	loggerSet     bool
	overwriteHook func(key string)
}

func defaultOptions() sheetOptions {
	return sheetOptions{
		validateKeys: true,
		sortStates:   true,
	}
}

// WithKeyValidation toggles key validation. Enabled by default: paths and
// state tags must be built from letters, digits, underscore, hyphen and the
// wildcard, with dots only separating path segments. Disabling it skips all
// checks and stores whatever strings the caller passes.
func WithKeyValidation(enabled bool) Option {
	return func(o *sheetOptions) {
		o.validateKeys = enabled
	}
}

// WithStateSorting toggles state normalization. Enabled by default: state
// tags are sorted and deduplicated before keying, so tag order never
// matters. When disabled, the caller must pass tags in a consistent order
// for Set and Get to agree on identity.
func WithStateSorting(enabled bool) Option {
	return func(o *sheetOptions) {
		o.sortStates = enabled
	}
}

// WithLogger replaces the sheet's logger. The default logs through the
// package-level zerolog setup under the "styles.sheet" component.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *sheetOptions) {
		o.logger = logger
		o.loggerSet = true
	}
}

// WithOverwriteHook registers a callback invoked with the serialized rule
// key whenever Set replaces an existing value. Overwrites are also logged
// at warn level regardless of the hook.
func WithOverwriteHook(hook func(key string)) Option {
	return func(o *sheetOptions) {
		o.overwriteHook = hook
	}
}

func (o sheetOptions) newLogger() zerolog.Logger {
	if o.loggerSet {
		return o.logger
	}
	return logging.GetLogger("styles.sheet")
}
