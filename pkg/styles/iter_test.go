package styles

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterationOrder(t *testing.T) {
	// Registration interleaves paths on purpose: iteration groups by
	// path in first-seen order, then by state-set order within a path.
	s := newTestSheet(t, []testRule{
		{"nav.button", nil, "1"},
		{"panel", []string{"open"}, "2"},
		{"nav.button", []string{"hover"}, "3"},
		{"panel", nil, "4"},
	})

	var keys []string
	for k := range s.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"nav.button|", "nav.button|hover", "panel|open", "panel|"}, keys)

	var values []string
	for v := range s.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []string{"1", "3", "2", "4"}, values)

	var entries []string
	for k, v := range s.Entries() {
		entries = append(entries, k+"="+v)
	}
	assert.Equal(t, []string{
		"nav.button|=1",
		"nav.button|hover=3",
		"panel|open=2",
		"panel|=4",
	}, entries)
}

func TestIterationEarlyBreak(t *testing.T) {
	s := newTestSheet(t, []testRule{
		{"a", nil, "1"},
		{"b", nil, "2"},
		{"c", nil, "3"},
	})

	var seen []string
	for k := range s.Keys() {
		seen = append(seen, k)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a|", "b|"}, seen)

	count := 0
	for range s.Entries() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestIterationIsRestartable(t *testing.T) {
	s := newTestSheet(t, []testRule{
		{"a", nil, "1"},
		{"b", nil, "2"},
	})

	seq := s.Keys()
	first := collect(seq)
	second := collect(seq)
	assert.Equal(t, first, second)

	// A range after mutation sees the new contents.
	require.NoError(t, s.Set("c", nil, "3"))
	assert.Equal(t, []string{"a|", "b|", "c|"}, collect(seq))
}

func TestIterationEmptySheet(t *testing.T) {
	s := newTestSheet(t, nil)

	for range s.Keys() {
		t.Fatal("empty sheet must yield nothing")
	}
	for range s.Entries() {
		t.Fatal("empty sheet must yield nothing")
	}
}

func collect(seq iter.Seq[string]) []string {
	var out []string
	for k := range seq {
		out = append(out, k)
	}
	return out
}
