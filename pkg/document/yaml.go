package document

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/styledot/pkg/errors"
)

// decodeYAML walks the yaml.v3 node tree, which keeps mapping order, rather
// than unmarshalling into Go maps.
func decodeYAML(data []byte) (*docMap, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocParse, "invalid YAML document")
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return &docMap{}, nil
	}

	top := resolveAlias(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrDocParse,
			"top-level YAML value must be a mapping")
	}
	return yamlToDocMap(top)
}

func yamlToDocMap(n *yaml.Node) (*docMap, error) {
	m := &docMap{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		valNode := resolveAlias(n.Content[i+1])

		if keyNode.Kind != yaml.ScalarNode {
			return nil, errors.Newf(errors.ErrDocParse,
				"mapping key at line %d must be a scalar", keyNode.Line)
		}
		key := keyNode.Value

		if !isStateKey(key) && valNode.Kind == yaml.MappingNode {
			child, err := yamlToDocMap(valNode)
			if err != nil {
				return nil, err
			}
			m.add(key, child)
			continue
		}

		var v interface{}
		if err := valNode.Decode(&v); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDocParse,
				"invalid YAML value at line %d", valNode.Line)
		}
		m.add(key, v)
	}
	return m, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

func encodeYAML(tree *encNode) ([]byte, error) {
	root, err := yamlNodeFor(tree)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot marshal YAML output")
	}
	return out, nil
}

func yamlNodeFor(n *encNode) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, it := range n.items {
		var (
			key string
			val *yaml.Node
			err error
		)
		if it.node != nil {
			key = it.seg
			if leaf, ok := it.node.collapsed(); ok {
				val, err = plainYAMLNode(leaf)
			} else {
				val, err = yamlNodeFor(it.node)
			}
		} else {
			key = stateKeyFor(it.states)
			val, err = plainYAMLNode(it.value)
		}
		if err != nil {
			return nil, err
		}
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		node.Content = append(node.Content, keyNode, val)
	}
	return node, nil
}

// plainYAMLNode renders payload values, sorting map keys so output is
// stable.
func plainYAMLNode(v interface{}) (*yaml.Node, error) {
	switch tv := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range keys {
			val, err := plainYAMLNode(tv[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, val)
		}
		return node, nil
	case []interface{}:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range tv {
			en, err := plainYAMLNode(e)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, en)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode YAML value")
		}
		return node, nil
	}
}
