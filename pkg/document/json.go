package document

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"

	"github.com/arthur-debert/styledot/pkg/errors"
)

// decodeJSON walks the token stream instead of unmarshalling into a map so
// that key order survives.
func decodeJSON(data []byte) (*docMap, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDocParse, "invalid JSON document")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New(errors.ErrDocParse,
			"top-level JSON value must be an object")
	}

	m, err := jsonObjectToDocMap(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrDocParse,
			"trailing content after JSON document")
	}
	return m, nil
}

// jsonObjectToDocMap consumes an object body whose opening brace has already
// been read, including the closing brace.
func jsonObjectToDocMap(dec *json.Decoder) (*docMap, error) {
	m := &docMap{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrDocParse, "invalid JSON document")
		}
		key := keyTok.(string)

		if isStateKey(key) {
			v, err := jsonPlainValue(dec)
			if err != nil {
				return nil, err
			}
			m.add(key, v)
			continue
		}

		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrDocParse, "invalid JSON document")
		}
		if d, ok := tok.(json.Delim); ok && d == '{' {
			child, err := jsonObjectToDocMap(dec)
			if err != nil {
				return nil, err
			}
			m.add(key, child)
			continue
		}
		v, err := jsonPlainFromToken(dec, tok)
		if err != nil {
			return nil, err
		}
		m.add(key, v)
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocParse, "invalid JSON document")
	}
	return m, nil
}

func jsonPlainValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDocParse, "invalid JSON document")
	}
	return jsonPlainFromToken(dec, tok)
}

// jsonPlainFromToken materializes the value whose first token has been
// read. Objects become unordered maps here: payloads are opaque, order only
// matters for the nesting skeleton.
func jsonPlainFromToken(dec *json.Decoder, tok json.Token) (interface{}, error) {
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		m := make(map[string]interface{})
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrDocParse, "invalid JSON document")
			}
			v, err := jsonPlainValue(dec)
			if err != nil {
				return nil, err
			}
			m[keyTok.(string)] = v
		}
		if _, err := dec.Token(); err != nil {
			return nil, errors.Wrap(err, errors.ErrDocParse, "invalid JSON document")
		}
		return m, nil
	case '[':
		var arr []interface{}
		for dec.More() {
			v, err := jsonPlainValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, errors.Wrap(err, errors.ErrDocParse, "invalid JSON document")
		}
		return arr, nil
	default:
		return nil, errors.Newf(errors.ErrDocParse, "unexpected delimiter %q", d)
	}
}

func encodeJSON(tree *encNode) ([]byte, error) {
	compact, err := tree.marshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot indent JSON output")
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (n *encNode) marshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range n.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		var (
			key string
			val []byte
			err error
		)
		if it.node != nil {
			key = it.seg
			if leaf, ok := it.node.collapsed(); ok {
				val, err = marshalPlainJSON(leaf)
			} else {
				val, err = it.node.marshalJSON()
			}
		} else {
			key = stateKeyFor(it.states)
			val, err = marshalPlainJSON(it.value)
		}
		if err != nil {
			return nil, err
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalPlainJSON renders payload values, sorting map keys so output is
// stable.
func marshalPlainJSON(v interface{}) ([]byte, error) {
	switch tv := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			vb, err := marshalPlainJSON(tv[k])
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			buf.Write(vb)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case []interface{}:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range tv {
			if i > 0 {
				buf.WriteByte(',')
			}
			eb, err := marshalPlainJSON(e)
			if err != nil {
				return nil, err
			}
			buf.Write(eb)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return json.Marshal(v)
	}
}
