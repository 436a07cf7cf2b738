package document

import (
	"strings"

	"github.com/arthur-debert/styledot/pkg/errors"
	"github.com/arthur-debert/styledot/pkg/styles"
)

// StatePrefix marks a mapping key as a state variant rather than a path
// segment.
const StatePrefix = "$"

const stateDelimiter = ","

// Entry is one flattened rule: the dot-joined noun path, the state tags
// (nil for the empty state, ["*"] for the base wildcard) and the payload.
type Entry struct {
	Path   string
	States []string
	Value  interface{}
}

// Document holds the flattened entries of one decoded document, in the
// order the sheet should receive them.
type Document struct {
	format  Format
	entries []Entry
}

// Format reports the format the document was decoded from.
func (d *Document) Format() Format {
	return d.format
}

// Len reports the number of flattened entries.
func (d *Document) Len() int {
	return len(d.entries)
}

// Flatten returns the document's entries in emission order. The slice is a
// copy; callers may reorder it freely.
func (d *Document) Flatten() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

func isStateKey(key string) bool {
	return strings.HasPrefix(key, StatePrefix)
}

// parseStateTags turns the delimited tag list of a state key or attribute
// into state tags. "" is the explicit empty state, "*" the base wildcard.
func parseStateTags(list string) ([]string, error) {
	if list == "" {
		return nil, nil
	}
	parts := strings.Split(list, stateDelimiter)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, errors.Newf(errors.ErrDocParse,
				"empty state tag in %q", list)
		}
		tags = append(tags, p)
	}
	return tags, nil
}

func parseStateKey(key string) ([]string, error) {
	return parseStateTags(strings.TrimPrefix(key, StatePrefix))
}

// docMap is the ordered mapping the per-format decoders produce. Values are
// either *docMap for nesting or a plain payload.
type docMap struct {
	keys []string
	vals []interface{}
}

func (m *docMap) add(key string, v interface{}) {
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
}

func (m *docMap) flatten(path []string, out *[]Entry) error {
	for i, key := range m.keys {
		v := m.vals[i]
		if isStateKey(key) {
			if len(path) == 0 {
				return errors.Newf(errors.ErrDocParse,
					"state key %q at document root has no noun path", key)
			}
			states, err := parseStateKey(key)
			if err != nil {
				return err
			}
			*out = append(*out, Entry{
				Path:   styles.JoinPath(path),
				States: states,
				Value:  v,
			})
			continue
		}

		if child, ok := v.(*docMap); ok {
			if err := child.flatten(append(path, key), out); err != nil {
				return err
			}
			continue
		}
		*out = append(*out, Entry{
			Path:  styles.JoinPath(append(path, key)),
			Value: v,
		})
	}
	return nil
}

func documentFrom(m *docMap, format Format) (*Document, error) {
	var entries []Entry
	if err := m.flatten(nil, &entries); err != nil {
		return nil, err
	}
	return &Document{format: format, entries: entries}, nil
}
