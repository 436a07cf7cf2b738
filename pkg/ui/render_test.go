package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/styledot/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFixture() *ui.ResolveReport {
	return &ui.ResolveReport{
		Path:   "nav.button.icon",
		States: []string{"disabled", "selected"},
		Matches: []ui.MatchResult{
			{
				Key:            "nav.button.icon|disabled,selected",
				Path:           "nav.button.icon",
				States:         []string{"disabled", "selected"},
				Value:          "icon-dim-selected",
				Score:          302,
				MatchingNouns:  3,
				MatchingStates: 2,
			},
			{
				Key:           "nav.*.icon|",
				Path:          "nav.*.icon",
				Value:         "icon-base",
				Score:         200,
				MatchingNouns: 2,
			},
		},
	}
}

func TestTextRendererResolve(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(resolveFixture()))

	want := "nav.button.icon|disabled,selected = icon-dim-selected (score 302)\n" +
		"nav.*.icon| = icon-base (score 200)\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRendererResolveNoMatches(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	rep := &ui.ResolveReport{Path: "nav.button", States: []string{"hover"}}
	require.NoError(t, r.RenderResult(rep))

	assert.Equal(t, "no rules match nav.button [hover]\n", buf.String())
}

func TestTextRendererRules(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	rep := &ui.RuleReport{
		Total: 2,
		Rules: []ui.RuleInfo{
			{Key: "nav.button|hover", Value: "icon-hover"},
			{Key: "panel|", Value: map[string]interface{}{"fg": "blue", "bold": true}},
		},
	}
	require.NoError(t, r.RenderResult(rep))

	want := "nav.button|hover = icon-hover\n" +
		"panel| = {\"bold\":true,\"fg\":\"blue\"}\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRendererCheck(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	rep := &ui.CheckReport{
		Files: []ui.FileCheck{
			{Path: "theme.yaml", Status: ui.StatusOK, Rules: 12},
			{Path: "broken.json", Status: ui.StatusError, Problems: []string{"unexpected end of input"}},
		},
	}
	require.NoError(t, r.RenderResult(rep))

	want := "theme.yaml: ok (12 rules)\n" +
		"broken.json: error\n" +
		"  unexpected end of input\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRendererErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderMessage("loaded theme.yaml"))
	require.NoError(t, r.RenderError(assert.AnError))

	assert.Contains(t, buf.String(), "loaded theme.yaml\n")
	assert.Contains(t, buf.String(), "Error: ")
}

func TestJSONRendererResolve(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(resolveFixture()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "nav.button.icon", decoded["path"])

	matches, ok := decoded["matches"].([]interface{})
	require.True(t, ok)
	require.Len(t, matches, 2)

	first, ok := matches[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "nav.button.icon|disabled,selected", first["key"])
	assert.Equal(t, float64(302), first["score"])
}

func TestJSONRendererErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(assert.AnError))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, assert.AnError.Error(), decoded["error"])

	buf.Reset()
	require.NoError(t, r.RenderMessage("done"))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "done", decoded["message"])
}

func TestTerminalRendererResolve(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(resolveFixture()))

	out := buf.String()
	assert.Contains(t, out, "nav.button.icon")
	assert.Contains(t, out, "icon-dim-selected")
	assert.Contains(t, out, "score 302")
}

func TestTerminalRendererCheckSummary(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	rep := &ui.CheckReport{
		Files: []ui.FileCheck{
			{Path: "theme.yaml", Status: ui.StatusOK, Rules: 3},
			{Path: "broken.json", Status: ui.StatusError, Problems: []string{"bad input"}},
		},
	}
	require.NoError(t, r.RenderResult(rep))

	out := buf.String()
	assert.Contains(t, out, "theme.yaml")
	assert.Contains(t, out, "broken.json")
	assert.Contains(t, out, "2 files checked")
	assert.Contains(t, out, "1 with errors")
}

func TestNewRendererAutoFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderMessage("hello"))
	assert.Equal(t, "hello\n", buf.String())
}

func TestNewRendererUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	_, err := ui.NewRenderer(ui.Format(42), &buf)
	assert.Error(t, err)
}
