package styles

import (
	"github.com/rs/zerolog"
)

// Sheet stores style rules of type T keyed by noun path and state set, and
// resolves queries against them by specificity. The zero value is not
// usable; construct with New.
type Sheet[T any] struct {
	opts   sheetOptions
	logger zerolog.Logger

	// Rules live in a two-level structure that preserves insertion order
	// at both levels, because registration order breaks score ties.
	paths     []*pathEntry[T]
	pathIndex map[string]int
	size      int
}

type pathEntry[T any] struct {
	path     string
	nouns    []string
	variants []stateVariant[T]
	varIndex map[string]int
}

type stateVariant[T any] struct {
	stateKey string
	states   []string
	value    T
}

// New builds an empty sheet. By default keys are validated and state tags
// are sorted; see the With* options.
func New[T any](opts ...Option) *Sheet[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sheet[T]{
		opts:      o,
		logger:    o.newLogger(),
		pathIndex: make(map[string]int),
	}
}

// Set registers value under the given noun path and state set, replacing
// any existing value for the same rule. Replacements are logged at warn
// level and reported to the overwrite hook when one is configured. The
// only error condition is key validation, and only when validation is
// enabled.
func (s *Sheet[T]) Set(path string, states []string, value T) error {
	if s.opts.validateKeys {
		if err := validatePath(path); err != nil {
			return err
		}
		if err := validateStates(states); err != nil {
			return err
		}
	}

	norm, stateKey := normalizeStates(states, s.opts.sortStates)

	pe := s.pathEntryFor(path)
	if idx, ok := pe.varIndex[stateKey]; ok {
		key := SerializeKey(path, norm)
		s.logger.Warn().
			Str("key", key).
			Msg("overwriting existing rule")
		if s.opts.overwriteHook != nil {
			s.opts.overwriteHook(key)
		}
		pe.variants[idx].value = value
		return nil
	}

	pe.varIndex[stateKey] = len(pe.variants)
	pe.variants = append(pe.variants, stateVariant[T]{
		stateKey: stateKey,
		states:   norm,
		value:    value,
	})
	s.size++

	s.logger.Debug().
		Str("path", path).
		Strs("states", norm).
		Msg("rule registered")
	return nil
}

func (s *Sheet[T]) pathEntryFor(path string) *pathEntry[T] {
	if idx, ok := s.pathIndex[path]; ok {
		return s.paths[idx]
	}
	pe := &pathEntry[T]{
		path:     path,
		nouns:    SplitPath(path),
		varIndex: make(map[string]int),
	}
	s.pathIndex[path] = len(s.paths)
	s.paths = append(s.paths, pe)
	return pe
}

func (s *Sheet[T]) lookup(path string, states []string) (*pathEntry[T], int, bool) {
	idx, ok := s.pathIndex[path]
	if !ok {
		return nil, 0, false
	}
	pe := s.paths[idx]
	_, stateKey := normalizeStates(states, s.opts.sortStates)
	vi, ok := pe.varIndex[stateKey]
	if !ok {
		return nil, 0, false
	}
	return pe, vi, true
}

// Get retrieves the value stored under exactly this path and state set.
// No matching is involved: wildcards are treated as literal characters, so
// Get("nav.*.icon", nil) only finds a rule registered with that very path.
func (s *Sheet[T]) Get(path string, states []string) (T, bool) {
	pe, vi, ok := s.lookup(path, states)
	if !ok {
		var zero T
		return zero, false
	}
	return pe.variants[vi].value, true
}

// Has reports whether a rule exists under exactly this path and state set.
func (s *Sheet[T]) Has(path string, states []string) bool {
	_, _, ok := s.lookup(path, states)
	return ok
}

// Delete removes the rule stored under exactly this path and state set and
// reports whether one existed. Remaining rules keep their relative
// registration order.
func (s *Sheet[T]) Delete(path string, states []string) bool {
	pe, vi, ok := s.lookup(path, states)
	if !ok {
		return false
	}

	delete(pe.varIndex, pe.variants[vi].stateKey)
	pe.variants = append(pe.variants[:vi], pe.variants[vi+1:]...)
	for i := vi; i < len(pe.variants); i++ {
		pe.varIndex[pe.variants[i].stateKey] = i
	}
	s.size--

	if len(pe.variants) == 0 {
		pi := s.pathIndex[pe.path]
		delete(s.pathIndex, pe.path)
		s.paths = append(s.paths[:pi], s.paths[pi+1:]...)
		for i := pi; i < len(s.paths); i++ {
			s.pathIndex[s.paths[i].path] = i
		}
	}
	return true
}

// Clear removes every rule.
func (s *Sheet[T]) Clear() {
	s.paths = nil
	s.pathIndex = make(map[string]int)
	s.size = 0
}

// Len reports the number of stored rules. Each path/state-set combination
// counts once.
func (s *Sheet[T]) Len() int {
	return s.size
}
