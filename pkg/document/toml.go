package document

import (
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/styledot/pkg/errors"
)

// decodeTOML unmarshals into nested maps and sorts keys at each level.
// TOML parsing loses document order, so the sorted order is the canonical
// one for this format.
func decodeTOML(data []byte) (*docMap, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocParse, "invalid TOML document")
	}
	return tomlToDocMap(raw), nil
}

func tomlToDocMap(raw map[string]interface{}) *docMap {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := &docMap{}
	for _, key := range keys {
		v := raw[key]
		if child, ok := v.(map[string]interface{}); ok && !isStateKey(key) {
			m.add(key, tomlToDocMap(child))
			continue
		}
		m.add(key, v)
	}
	return m
}

func encodeTOML(tree *encNode) ([]byte, error) {
	out, err := toml.Marshal(tree.plainMap())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot marshal TOML output")
	}
	return out, nil
}
