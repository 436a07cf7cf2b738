package styles

import (
	"sort"
)

const nounWeight = 100

// FindAllMatches returns every rule that applies to the query, most
// specific first. A rule applies when its path has the same number of
// segments as the query, each segment is the wildcard or equals the query
// segment at that position, and each of its state tags is active in the
// query. The base wildcard state and the empty state set apply to any
// query.
//
// Matches sort by score, descending. Rules with equal scores keep their
// registration order, which makes ties deterministic.
func (s *Sheet[T]) FindAllMatches(q Query) []Match[T] {
	active := make(map[string]struct{}, len(q.States))
	for _, tag := range q.States {
		active[tag] = struct{}{}
	}

	var matches []Match[T]
	for _, pe := range s.paths {
		nouns, ok := matchNouns(pe.nouns, q.Nouns)
		if !ok {
			continue
		}
		for _, v := range pe.variants {
			states, ok := matchStates(v, active)
			if !ok {
				continue
			}
			matches = append(matches, Match[T]{
				Key:            SerializeKey(pe.path, v.states),
				Path:           pe.path,
				States:         append([]string(nil), v.states...),
				Value:          v.value,
				Score:          nouns*nounWeight + states,
				MatchingNouns:  nouns,
				MatchingStates: states,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	s.logger.Trace().
		Strs("nouns", q.Nouns).
		Strs("states", q.States).
		Int("matches", len(matches)).
		Msg("query resolved")
	return matches
}

// matchNouns reports whether a rule path applies to the query nouns, and
// how many of its segments are literal. Paths of different lengths never
// match.
func matchNouns(pattern, nouns []string) (int, bool) {
	if len(pattern) != len(nouns) {
		return 0, false
	}
	literal := 0
	for i, seg := range pattern {
		if seg == Wildcard {
			continue
		}
		if seg != nouns[i] {
			return 0, false
		}
		literal++
	}
	return literal, true
}

// matchStates reports whether a state variant applies to the active state
// set, and how many explicit tags it contributes to the score. The base
// wildcard applies everywhere and contributes nothing.
func matchStates[T any](v stateVariant[T], active map[string]struct{}) (int, bool) {
	if v.stateKey == Wildcard {
		return 0, true
	}
	for _, tag := range v.states {
		if _, ok := active[tag]; !ok {
			return 0, false
		}
	}
	return len(v.states), true
}

// FindBestMatch returns the single most specific rule for the query.
func (s *Sheet[T]) FindBestMatch(q Query) (Match[T], bool) {
	matches := s.FindAllMatches(q)
	if len(matches) == 0 {
		var zero Match[T]
		return zero, false
	}
	return matches[0], true
}

// Match resolves the query to the winning rule's value.
func (s *Sheet[T]) Match(q Query) (T, bool) {
	m, ok := s.FindBestMatch(q)
	if !ok {
		var zero T
		return zero, false
	}
	return m.Value, true
}

// MatchHierarchy resolves like Match, but when nothing applies to the full
// path it retries with only the final segment. That lets an atomic rule
// such as "icon" back every "*.icon" context that lacks a rule of its own.
// Only the one fallback level is tried.
func (s *Sheet[T]) MatchHierarchy(q Query) (T, bool) {
	if v, ok := s.Match(q); ok {
		return v, true
	}
	if len(q.Nouns) > 1 {
		leaf := Query{
			Nouns:  q.Nouns[len(q.Nouns)-1:],
			States: q.States,
		}
		return s.Match(leaf)
	}
	var zero T
	return zero, false
}
