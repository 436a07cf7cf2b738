package ui

import (
	"github.com/pterm/pterm"
)

// Status classifies the outcome of checking a single stylesheet document
type Status string

const (
	StatusOK      Status = "ok"      // Document parsed and every rule loaded
	StatusWarning Status = "warning" // Document loaded but some rules were overwritten
	StatusError   Status = "error"   // Document failed to parse or load
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusOK:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusWarning:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// MatchResult is a single ranked match produced by resolving a query.
type MatchResult struct {
	Key            string      `json:"key"`
	Path           string      `json:"path"`
	States         []string    `json:"states,omitempty"`
	Value          interface{} `json:"value"`
	Score          int         `json:"score"`
	MatchingNouns  int         `json:"matching_nouns"`
	MatchingStates int         `json:"matching_states"`
}

// ResolveReport describes the outcome of resolving a query against a stylesheet.
type ResolveReport struct {
	Source   string        `json:"source,omitempty"`
	Path     string        `json:"path"`
	States   []string      `json:"states,omitempty"`
	Fallback bool          `json:"fallback,omitempty"`
	Matches  []MatchResult `json:"matches"`
}

// RuleInfo is a single stored rule in a RuleReport.
type RuleInfo struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// RuleReport lists the rules held by a stylesheet in registration order.
type RuleReport struct {
	Source string     `json:"source,omitempty"`
	Filter string     `json:"filter,omitempty"`
	Total  int        `json:"total"`
	Rules  []RuleInfo `json:"rules"`
}

// FileCheck is the validation result for a single stylesheet document.
type FileCheck struct {
	Path     string   `json:"path"`
	Status   Status   `json:"status"`
	Rules    int      `json:"rules"`
	Problems []string `json:"problems,omitempty"`
}

// CheckReport summarizes validation across one or more stylesheet documents.
type CheckReport struct {
	Files []FileCheck `json:"files"`
}

// Failed reports whether any checked document had errors
func (r *CheckReport) Failed() bool {
	for _, f := range r.Files {
		if f.Status == StatusError {
			return true
		}
	}
	return false
}

// AggregateStatus determines the overall status of a check run based on its files
func AggregateStatus(files []FileCheck) Status {
	hasWarning := false

	for _, f := range files {
		switch f.Status {
		case StatusError:
			return StatusError
		case StatusWarning:
			hasWarning = true
		}
	}

	if hasWarning {
		return StatusWarning
	}
	return StatusOK
}
