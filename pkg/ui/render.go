// Package ui provides a unified interface for rendering resolution results,
// rule listings, and document checks in different output formats. It supports
// terminal (rich), text (plain), and JSON output.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a report type (ResolveReport, RuleReport, CheckReport)
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Non-file writers cannot be inspected, assume plain text
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &terminalRenderer{output: output}, nil
	case FormatText:
		return &textRenderer{output: output}, nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// formatValue renders a rule payload for display. Strings pass through
// unchanged, everything else is compact JSON so nested payloads stay on
// one line with deterministic key order.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func describeQuery(rep *ResolveReport) string {
	if len(rep.States) == 0 {
		return rep.Path
	}
	return rep.Path + " [" + strings.Join(rep.States, " ") + "]"
}

// terminalRenderer provides rich output using lipgloss and pterm styling
type terminalRenderer struct {
	output io.Writer
}

func (r *terminalRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *ResolveReport:
		return r.renderResolve(v)
	case *RuleReport:
		return r.renderRules(v)
	case *CheckReport:
		return r.renderCheck(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *terminalRenderer) renderResolve(rep *ResolveReport) error {
	var b strings.Builder

	header := SelectorStyle.Render(rep.Path)
	if len(rep.States) > 0 {
		header += " " + StateTagStyle.Render("["+strings.Join(rep.States, " ")+"]")
	}
	if rep.Fallback {
		header += " " + MutedStyle.Render("(leaf fallback)")
	}
	b.WriteString(header + "\n")

	if len(rep.Matches) == 0 {
		b.WriteString(Indent(MutedStyle.Render("no matching rules"), 1) + "\n")
		_, err := fmt.Fprint(r.output, b.String())
		return err
	}

	for i, m := range rep.Matches {
		indicator := PendingIndicator
		if i == 0 {
			indicator = SuccessIndicator
		}
		score := MutedStyle.Render(fmt.Sprintf("(score %d: %d nouns, %d states)",
			m.Score, m.MatchingNouns, m.MatchingStates))
		line := fmt.Sprintf("%s %s = %s %s",
			indicator,
			CodeStyle.Render(m.Key),
			ValueStyle.Render(formatValue(m.Value)),
			score)
		b.WriteString(Indent(line, 1) + "\n")
	}

	_, err := fmt.Fprint(r.output, b.String())
	return err
}

func (r *terminalRenderer) renderRules(rep *RuleReport) error {
	var b strings.Builder

	title := TitleStyle.Render(fmt.Sprintf("Rules (%d)", rep.Total))
	if rep.Filter != "" {
		title += " " + MutedStyle.Render("filter: "+rep.Filter)
	}
	b.WriteString(title + "\n")

	if len(rep.Rules) == 0 {
		b.WriteString(Indent(MutedStyle.Render("no rules"), 1) + "\n")
	}
	for _, ri := range rep.Rules {
		line := fmt.Sprintf("%s %s = %s",
			InfoIndicator,
			CodeStyle.Render(ri.Key),
			ValueStyle.Render(formatValue(ri.Value)))
		b.WriteString(Indent(line, 1) + "\n")
	}

	_, err := fmt.Fprint(r.output, b.String())
	return err
}

func (r *terminalRenderer) renderCheck(rep *CheckReport) error {
	var b strings.Builder

	for _, fc := range rep.Files {
		b.WriteString(renderFileCheck(fc) + "\n")
	}

	errCount := 0
	warnCount := 0
	for _, fc := range rep.Files {
		switch fc.Status {
		case StatusError:
			errCount++
		case StatusWarning:
			warnCount++
		}
	}

	indicator := SuccessIndicator
	switch AggregateStatus(rep.Files) {
	case StatusError:
		indicator = ErrorIndicator
	case StatusWarning:
		indicator = WarningIndicator
	}

	b.WriteString(DividerStyle.Render(strings.Repeat("-", 40)) + "\n")
	summary := Bold(fmt.Sprintf("%d files checked", len(rep.Files)))
	if errCount > 0 {
		summary += MutedStyle.Render(fmt.Sprintf(", %d with errors", errCount))
	}
	if warnCount > 0 {
		summary += MutedStyle.Render(fmt.Sprintf(", %d with warnings", warnCount))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", indicator, summary))

	_, err := fmt.Fprint(r.output, b.String())
	return err
}

// renderFileCheck renders the status line for a single checked document
func renderFileCheck(fc FileCheck) string {
	badge := StatusStyle(fc.Status).Sprint(fmt.Sprintf(" %-7s ", string(fc.Status)))

	summary := fmt.Sprintf("%d rules", fc.Rules)
	if fc.Status == StatusError {
		summary = "failed to load"
	}

	line := fmt.Sprintf("%s %s : %s", badge, PathStyle.Render(fc.Path), summary)

	problemIndicator := WarningIndicator
	if fc.Status == StatusError {
		problemIndicator = ErrorIndicator
	}
	for _, p := range fc.Problems {
		line += "\n" + Indent(fmt.Sprintf("%s %s", problemIndicator, p), 2)
	}

	return line
}

func (r *terminalRenderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	_, werr := fmt.Fprintf(r.output, "%s %s\n", ErrorIndicator, ErrorStyle.Render(err.Error()))
	return werr
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", InfoIndicator, msg)
	return err
}

// textRenderer provides plain text output without colors or styling
type textRenderer struct {
	output io.Writer
}

func (r *textRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *ResolveReport:
		return r.renderResolve(v)
	case *RuleReport:
		return r.renderRules(v)
	case *CheckReport:
		return r.renderCheck(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *textRenderer) renderResolve(rep *ResolveReport) error {
	if len(rep.Matches) == 0 {
		_, err := fmt.Fprintf(r.output, "no rules match %s\n", describeQuery(rep))
		return err
	}
	for _, m := range rep.Matches {
		_, err := fmt.Fprintf(r.output, "%s = %s (score %d)\n", m.Key, formatValue(m.Value), m.Score)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *textRenderer) renderRules(rep *RuleReport) error {
	for _, ri := range rep.Rules {
		_, err := fmt.Fprintf(r.output, "%s = %s\n", ri.Key, formatValue(ri.Value))
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *textRenderer) renderCheck(rep *CheckReport) error {
	for _, fc := range rep.Files {
		var err error
		if fc.Status == StatusError {
			_, err = fmt.Fprintf(r.output, "%s: %s\n", fc.Path, fc.Status)
		} else {
			_, err = fmt.Fprintf(r.output, "%s: %s (%d rules)\n", fc.Path, fc.Status, fc.Rules)
		}
		if err != nil {
			return err
		}
		for _, p := range fc.Problems {
			if _, err := fmt.Fprintf(r.output, "  %s\n", p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *textRenderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// jsonRenderer provides machine-readable JSON output
type jsonRenderer struct {
	output  io.Writer
	encoder *json.Encoder
}

func newJSONRenderer(output io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{
		output:  output,
		encoder: encoder,
	}
}

func (r *jsonRenderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"error": err.Error(),
	})
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{
		"message": msg,
	})
}
