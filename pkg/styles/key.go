package styles

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/styledot/pkg/errors"
)

const (
	// Wildcard matches any single path segment, and as the sole state tag
	// marks the base wildcard state.
	Wildcard = "*"

	// PathSeparator joins the segments of a noun path.
	PathSeparator = "."

	stateSeparator = ","
	keySeparator   = "|"
)

// Path and state tokens share one grammar. The dot is reserved as the path
// separator and the comma as the state separator, so neither is a valid
// token character.
var tokenRe = regexp.MustCompile(`^[A-Za-z0-9_*-]+$`)

// SplitPath splits a noun path into its segments.
func SplitPath(path string) []string {
	return strings.Split(path, PathSeparator)
}

// JoinPath is the inverse of SplitPath.
func JoinPath(nouns []string) string {
	return strings.Join(nouns, PathSeparator)
}

// SerializeKey builds the canonical key for a rule: the noun path and the
// comma-joined state tags, separated by "|". An unconstrained rule
// serializes with an empty state part, the base wildcard with "*".
func SerializeKey(path string, states []string) string {
	return path + keySeparator + strings.Join(states, stateSeparator)
}

// ParseKey splits a serialized rule key back into its noun path and state
// tags. States is nil when the state part is empty.
func ParseKey(key string) (path string, states []string) {
	path, stateKey, found := strings.Cut(key, keySeparator)
	if !found || stateKey == "" {
		return path, nil
	}
	return path, strings.Split(stateKey, stateSeparator)
}

func validatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidKey, "noun path must not be empty")
	}
	for _, seg := range SplitPath(path) {
		if seg == "" {
			return errors.New(errors.ErrInvalidKey,
				"noun path has an empty segment").
				WithDetail("path", path)
		}
		if !tokenRe.MatchString(seg) {
			return errors.Newf(errors.ErrInvalidKey,
				"invalid path segment %q", seg).
				WithDetail("path", path)
		}
	}
	return nil
}

func validateStates(states []string) error {
	for _, tag := range states {
		if tag == "" {
			return errors.New(errors.ErrInvalidKey, "state tag must not be empty")
		}
		if !tokenRe.MatchString(tag) {
			return errors.Newf(errors.ErrInvalidKey, "invalid state tag %q", tag)
		}
	}
	return nil
}

// normalizeStates produces the canonical tag slice and state key for a
// state set. With sorting on, tags are sorted and deduplicated so that any
// ordering of the same set keys identically. With sorting off the caller's
// ordering is kept verbatim. The returned slice never aliases the input.
func normalizeStates(states []string, sorted bool) (norm []string, stateKey string) {
	if len(states) == 0 {
		return nil, ""
	}
	norm = make([]string, len(states))
	copy(norm, states)
	if sorted {
		sort.Strings(norm)
		dst := norm[:1]
		for _, tag := range norm[1:] {
			if tag != dst[len(dst)-1] {
				dst = append(dst, tag)
			}
		}
		norm = dst
	}
	return norm, strings.Join(norm, stateSeparator)
}
