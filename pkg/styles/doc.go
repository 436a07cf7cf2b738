// Package styles provides a rule store that resolves style values for
// hierarchical element paths and modifier states, ranked by an explicit
// specificity score.
//
// This package replaces cascade-order guesswork with a deterministic rule:
// every stored rule that applies to a query is scored, and the highest score
// wins. Ties resolve to the rule that was registered first.
//
// # Noun Paths
//
// A rule is keyed by a noun path, a dot-joined sequence of category segments:
//
//   - `nav.button.icon` - a fully literal three-segment path
//   - `nav.*.icon` - `*` matches any single segment at that position
//   - `icon` - a one-segment (atomic) path
//
// Path length is part of identity: `nav.*.icon` only ever applies to
// three-segment queries, never to `icon` or `nav.icon`.
//
// # States
//
// A rule also carries a set of state tags (hover, disabled, selected, ...).
// Order never matters: tags are sorted before keying, so ["disabled","selected"]
// and ["selected","disabled"] name the same rule. Two special forms exist:
//
//   - `[]` - no state constraint; applies to any query, adds 0 to the score
//   - `["*"]` - the base wildcard; also applies to any query and adds 0, but
//     is a distinct stored entry from `[]`
//
// A normal state set applies when every one of its tags is active in the
// query. A rule may require fewer states than the query has active, never
// more.
//
// # Scoring
//
// score = literalSegments*100 + explicitStateTags
//
// A fully literal path always beats a wildcard path of the same length, and
// among rules on the same path, more required states beat fewer:
//
//	sheet := styles.New[string]()
//	sheet.Set("nav.button.icon", []string{"disabled", "selected"}, "specific") // 302
//	sheet.Set("nav.*.icon", []string{"disabled", "selected"}, "partial")      // 202
//	v, _ := sheet.Match(styles.Query{
//		Nouns:  []string{"nav", "button", "icon"},
//		States: []string{"disabled", "selected"},
//	})
//	// v == "specific"
//
// # Hierarchical Fallback
//
// MatchHierarchy retries a failed match with only the final path segment, so
// an atomic rule keyed `icon` can back any `*.icon` context that has no rule
// of its own. Exactly one fallback level is tried.
//
// # Concurrency
//
// A Sheet does no internal locking. Concurrent readers are safe while no
// writer runs; callers serialize writers. See the themes package for a
// lock-guarded registry of whole sheets.
package styles
