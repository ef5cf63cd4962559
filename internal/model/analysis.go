// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// =============================================================================
// SEVERITY
// =============================================================================

// Severity classifies an issue found during analysis.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank orders severities for sorting and styling, critical first.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// DisplayName returns the label shown on issue cards.
func (s Severity) DisplayName() string {
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(string(s)[:1]) + string(s)[1:]
}

// Valid reports whether the backend sent a severity this client knows.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// =============================================================================
// ANALYSIS
// =============================================================================

// Issue is a single finding inside an AnalysisResult. Immutable once
// received.
type Issue struct {
	Severity    Severity `json:"severity"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion"`
	Line        int      `json:"line,omitempty"`
}

// Complexity holds the backend's big-O estimate for a piece of code.
type Complexity struct {
	Time  string `json:"time"`
	Space string `json:"space"`
}

// AnalysisResult is the payload of one successful /api/analyze call.
// The per-severity counts are trusted as sent; the client does not
// recompute them.
type AnalysisResult struct {
	TotalIssues   int         `json:"total_issues"`
	CriticalCount int         `json:"critical_count"`
	HighCount     int         `json:"high_count"`
	MediumCount   int         `json:"medium_count"`
	LowCount      int         `json:"low_count"`
	Issues        []Issue     `json:"issues"`
	Summary       string      `json:"summary"`
	Complexity    *Complexity `json:"complexity,omitempty"`
}
