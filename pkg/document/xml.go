package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/styledot/pkg/errors"
	"github.com/arthur-debert/styledot/pkg/styles"
)

const xmlStatesAttr = "states"

// decodeXML maps an element tree onto rules: element names build the noun
// path, a "states" attribute marks a variant leaf, elements without child
// elements are empty-state leaves with their text as payload. The root
// element is only a wrapper; its name is not part of any path.
func decodeXML(data []byte) (*Document, error) {
	x := etree.NewDocument()
	if err := x.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocParse, "invalid XML document")
	}
	root := x.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDocParse, "XML document has no root element")
	}

	var entries []Entry
	for _, el := range root.ChildElements() {
		if err := flattenXMLElement(el, nil, &entries); err != nil {
			return nil, err
		}
	}
	return &Document{format: FormatXML, entries: entries}, nil
}

func flattenXMLElement(el *etree.Element, path []string, out *[]Entry) error {
	p := append(path, el.Tag)

	if attr := el.SelectAttr(xmlStatesAttr); attr != nil {
		states, err := parseStateTags(attr.Value)
		if err != nil {
			return err
		}
		*out = append(*out, Entry{
			Path:   styles.JoinPath(p),
			States: states,
			Value:  xmlElementValue(el),
		})
		return nil
	}

	children := el.ChildElements()
	if len(children) == 0 {
		*out = append(*out, Entry{
			Path:  styles.JoinPath(p),
			Value: strings.TrimSpace(el.Text()),
		})
		return nil
	}
	for _, c := range children {
		if err := flattenXMLElement(c, p, out); err != nil {
			return err
		}
	}
	return nil
}

// xmlElementValue renders a variant element's payload: its trimmed text, or
// a nested map when it has child elements.
func xmlElementValue(el *etree.Element) interface{} {
	children := el.ChildElements()
	if len(children) == 0 {
		return strings.TrimSpace(el.Text())
	}
	m := make(map[string]interface{}, len(children))
	for _, c := range children {
		m[c.Tag] = xmlElementValue(c)
	}
	return m
}

func encodeXML(tree *encNode) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := x.CreateElement("styles")

	for _, it := range tree.items {
		if it.node == nil {
			return nil, errors.New(errors.ErrDocFormat,
				"cannot encode a state entry at the document root as XML")
		}
		if err := emitXMLNode(root, it.seg, it.node); err != nil {
			return nil, err
		}
	}

	x.Indent(2)
	return x.WriteToBytes()
}

// emitXMLNode writes the elements for one noun-path node under parent. Each
// state variant becomes its own element carrying the states attribute;
// nested segments share one container element. Variants therefore group
// before children in the output even when the source interleaved them.
func emitXMLNode(parent *etree.Element, seg string, n *encNode) error {
	hasChildren := false
	for _, it := range n.items {
		if it.node != nil {
			hasChildren = true
			continue
		}
		el := parent.CreateElement(seg)
		if len(it.states) > 0 {
			el.CreateAttr(xmlStatesAttr, strings.Join(it.states, stateDelimiter))
		} else if _, isMap := it.value.(map[string]interface{}); isMap {
			// Without the attribute a map payload would decode as nested
			// path segments.
			el.CreateAttr(xmlStatesAttr, "")
		}
		if err := setXMLValue(el, it.value); err != nil {
			return err
		}
	}

	if hasChildren {
		container := parent.CreateElement(seg)
		for _, it := range n.items {
			if it.node == nil {
				continue
			}
			if err := emitXMLNode(container, it.seg, it.node); err != nil {
				return err
			}
		}
	}
	return nil
}

func setXMLValue(el *etree.Element, v interface{}) error {
	switch tv := v.(type) {
	case nil:
	case string:
		el.SetText(tv)
	case map[string]interface{}:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := el.CreateElement(k)
			if err := setXMLValue(child, tv[k]); err != nil {
				return err
			}
		}
	case []interface{}:
		return errors.New(errors.ErrDocFormat,
			"array payloads cannot be encoded as XML")
	default:
		el.SetText(fmt.Sprint(tv))
	}
	return nil
}
