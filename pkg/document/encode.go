package document

import (
	"strings"

	"github.com/arthur-debert/styledot/pkg/errors"
	"github.com/arthur-debert/styledot/pkg/styles"
)

// Encode renders the document in the given format. Entry order is kept for
// JSON and YAML; XML groups nested segments after state variants; TOML
// output order is up to the TOML encoder.
func Encode(doc *Document, format Format) ([]byte, error) {
	tree := buildEncTree(doc.entries)
	switch format {
	case FormatJSON:
		return encodeJSON(tree)
	case FormatYAML:
		return encodeYAML(tree)
	case FormatTOML:
		return encodeTOML(tree)
	case FormatXML:
		return encodeXML(tree)
	default:
		return nil, errors.Newf(errors.ErrDocFormat,
			"cannot encode format %q", format)
	}
}

// encNode rebuilds the nested shape from flat entries. Items keep entry
// order; a segment revisited later folds into its earlier node.
type encNode struct {
	items []encItem
	index map[string]int
}

// encItem is either a nested segment (node != nil) or a state variant at
// this node (node == nil).
type encItem struct {
	seg    string
	node   *encNode
	states []string
	value  interface{}
}

func newEncNode() *encNode {
	return &encNode{index: make(map[string]int)}
}

func buildEncTree(entries []Entry) *encNode {
	root := newEncNode()
	for _, e := range entries {
		n := root
		for _, seg := range styles.SplitPath(e.Path) {
			n = n.child(seg)
		}
		n.items = append(n.items, encItem{states: e.States, value: e.Value})
	}
	return root
}

func (n *encNode) child(seg string) *encNode {
	if idx, ok := n.index[seg]; ok {
		return n.items[idx].node
	}
	c := newEncNode()
	n.index[seg] = len(n.items)
	n.items = append(n.items, encItem{seg: seg, node: c})
	return c
}

// collapsed reports whether this node is exactly one empty-state leaf, so
// encoders can write it as a direct value instead of a "$" entry.
func (n *encNode) collapsed() (interface{}, bool) {
	if len(n.items) == 1 && n.items[0].node == nil && n.items[0].states == nil {
		return n.items[0].value, true
	}
	return nil, false
}

// plainMap renders the tree as nested unordered maps for encoders that
// take Go values directly.
func (n *encNode) plainMap() map[string]interface{} {
	m := make(map[string]interface{}, len(n.items))
	for _, it := range n.items {
		if it.node != nil {
			if leaf, ok := it.node.collapsed(); ok {
				m[it.seg] = leaf
			} else {
				m[it.seg] = it.node.plainMap()
			}
			continue
		}
		m[stateKeyFor(it.states)] = it.value
	}
	return m
}

func stateKeyFor(states []string) string {
	return StatePrefix + strings.Join(states, stateDelimiter)
}
