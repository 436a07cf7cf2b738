package document

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/styledot/pkg/errors"
	"github.com/arthur-debert/styledot/pkg/styles"
)

func TestPopulate(t *testing.T) {
	doc, err := Decode([]byte(`
nav:
  button:
    icon: plain-glyph
    $hover: hover-glyph
`), FormatYAML)
	require.NoError(t, err)

	sheet := styles.New[interface{}](styles.WithLogger(zerolog.Nop()))
	require.NoError(t, Populate(sheet, doc))

	assert.Equal(t, 2, sheet.Len())
	v, ok := sheet.Match(styles.Query{
		Nouns:  []string{"nav", "button"},
		States: []string{"hover"},
	})
	require.True(t, ok)
	assert.Equal(t, "hover-glyph", v)
}

func TestPopulateCollectsEntryErrors(t *testing.T) {
	// "bad path" fails key validation; the surrounding entries still land.
	doc, err := Decode([]byte(`{"good": "1", "bad path": "2", "also.good": "3"}`), FormatJSON)
	require.NoError(t, err)

	sheet := styles.New[interface{}](styles.WithLogger(zerolog.Nop()))
	err = Populate(sheet, doc)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidKey))

	assert.Equal(t, 2, sheet.Len())
	assert.True(t, sheet.Has("good", nil))
	assert.True(t, sheet.Has("also.good", nil))
}

func TestApplyConverts(t *testing.T) {
	doc, err := Decode([]byte(`{"a": "one", "b": "two", "c": 3}`), FormatJSON)
	require.NoError(t, err)

	sheet := styles.New[string](styles.WithLogger(zerolog.Nop()))
	err = Apply(sheet, doc, func(v interface{}) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("not a string: %v", v)
		}
		return s, nil
	})

	// The non-string entry is reported but the rest apply.
	require.Error(t, err)
	assert.Equal(t, 2, sheet.Len())
	v, ok := sheet.Get("a", nil)
	require.True(t, ok)
	assert.Equal(t, "one", v)
	assert.False(t, sheet.Has("c", nil))
}

func TestLoadFile(t *testing.T) {
	sheet, err := LoadFile("testdata/nav.yaml")
	require.NoError(t, err)

	require.Equal(t, 5, sheet.Len())

	v, ok := sheet.Match(styles.Query{
		Nouns:  []string{"nav", "button"},
		States: []string{"hover"},
	})
	require.True(t, ok)
	assert.Equal(t, "hover-glyph", v)

	// The base wildcard backs queries with unknown states.
	v, ok = sheet.Match(styles.Query{
		Nouns:  []string{"nav", "button"},
		States: []string{"pressed"},
	})
	require.True(t, ok)
	assert.Equal(t, "base-glyph", v)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile("testdata/missing.yaml")
	assert.Error(t, err)

	dir := t.TempDir()
	noExt := filepath.Join(dir, "styles")
	require.NoError(t, os.WriteFile(noExt, []byte("{}"), 0o644))
	_, err = LoadFile(noExt)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDocFormat))
}
