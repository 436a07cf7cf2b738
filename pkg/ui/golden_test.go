package ui_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/styledot/pkg/ui"
)

// Golden files pin the full plain-text output of each report shape, so
// format drift shows up as a readable diff. Regenerate with go test -update.
func goldenRender(t *testing.T, report interface{}) []byte {
	t.Helper()
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(report))
	return buf.Bytes()
}

func TestGoldenResolveReport(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "resolve_report", goldenRender(t, resolveFixture()))
}

func TestGoldenCheckReport(t *testing.T) {
	rep := &ui.CheckReport{
		Files: []ui.FileCheck{
			{Path: "themes/dark.yaml", Status: ui.StatusOK, Rules: 24},
			{Path: "themes/light.yaml", Status: ui.StatusWarning, Rules: 23, Problems: []string{
				`rule "panel|focus" registered more than once`,
			}},
			{Path: "themes/broken.toml", Status: ui.StatusError, Problems: []string{
				`entry side bar.panel: [INVALID_KEY] invalid path segment "side bar"`,
				`entry nav.button: [INVALID_KEY] invalid state tag "fo cus"`,
			}},
		},
	}

	g := goldie.New(t)
	g.Assert(t, "check_report", goldenRender(t, rep))
}
