// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"
)

func TestSeverityRankOrdering(t *testing.T) {
	order := []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("%s should rank before %s", order[i-1], order[i])
		}
	}
	if Severity("bogus").Rank() <= SeverityLow.Rank() {
		t.Error("unknown severity should rank last")
	}
}

func TestSeverityDisplayName(t *testing.T) {
	if got := SeverityCritical.DisplayName(); got != "Critical" {
		t.Errorf("DisplayName = %q, want Critical", got)
	}
	if got := Severity("").DisplayName(); got != "Unknown" {
		t.Errorf("empty severity DisplayName = %q, want Unknown", got)
	}
}

func TestGuestSession(t *testing.T) {
	s := Guest()
	if !s.IsGuest || s.Token != "" || s.User != nil {
		t.Errorf("Guest() = %+v, want empty guest session", s)
	}
	if s.Authenticated() {
		t.Error("guest session must not report authenticated")
	}
}

func TestAnalysisResultWireShape(t *testing.T) {
	body := `{
		"total_issues": 2,
		"critical_count": 1,
		"high_count": 0,
		"medium_count": 1,
		"low_count": 0,
		"issues": [
			{"severity": "critical", "category": "security", "description": "d", "suggestion": "s", "line": 3},
			{"severity": "medium", "category": "style", "description": "d2", "suggestion": "s2"}
		],
		"summary": "two findings",
		"complexity": {"time": "O(n)", "space": "O(1)"}
	}`
	var r AnalysisResult
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.TotalIssues != 2 || len(r.Issues) != 2 {
		t.Fatalf("got %d total, %d issues", r.TotalIssues, len(r.Issues))
	}
	if r.Issues[0].Severity != SeverityCritical || r.Issues[0].Line != 3 {
		t.Errorf("first issue = %+v", r.Issues[0])
	}
	if r.Issues[1].Line != 0 {
		t.Errorf("missing line should decode to 0, got %d", r.Issues[1].Line)
	}
	if r.Complexity == nil || r.Complexity.Time != "O(n)" {
		t.Errorf("complexity = %+v", r.Complexity)
	}
}

func TestRewriteResultWireShape(t *testing.T) {
	body := `{
		"success": true,
		"original_code": "a",
		"rewritten_code": "b",
		"original_complexity": {"time": "O(n^2)", "space": "O(n)"},
		"rewritten_complexity": {"time": "O(n)", "space": "O(1)"},
		"improvements": ["fewer passes"],
		"explanation": "single loop"
	}`
	var r RewriteResult
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.OriginalCode != "a" || r.RewrittenCode != "b" {
		t.Errorf("code fields = %q / %q", r.OriginalCode, r.RewrittenCode)
	}
	if r.RewrittenComplexity == nil || r.RewrittenComplexity.Time != "O(n)" {
		t.Errorf("rewritten complexity = %+v", r.RewrittenComplexity)
	}
	if len(r.Improvements) != 1 || r.Explanation != "single loop" {
		t.Errorf("improvements = %v, explanation = %q", r.Improvements, r.Explanation)
	}
}

func TestHistoryEntryTypedDecode(t *testing.T) {
	raw := `{
		"_id": "h1",
		"type": "analyze",
		"language": "python",
		"original_code": "print(1)",
		"result": {"total_issues": 1, "medium_count": 1, "issues": [], "summary": "ok"},
		"timestamp": "2025-06-01T12:00:00Z"
	}`
	var e HistoryEntry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	a, err := e.AnalysisResult()
	if err != nil {
		t.Fatalf("AnalysisResult: %v", err)
	}
	if a.TotalIssues != 1 || a.Summary != "ok" {
		t.Errorf("decoded analysis = %+v", a)
	}
	if _, err := e.RewriteResult(); err == nil {
		t.Error("RewriteResult on an analyze entry should fail")
	}
}

func TestNewChatTurnIDsUnique(t *testing.T) {
	a := NewChatTurn(RoleUser, "hi")
	b := NewChatTurn(RoleUser, "hi")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("turn IDs must be unique and non-empty, got %q / %q", a.ID, b.ID)
	}
}

func TestChatTurnWireShapeOmitsID(t *testing.T) {
	turn := NewChatTurn(RoleAssistant, "hello")
	data, err := json.Marshal(turn)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["ID"]; ok {
		t.Error("local turn ID must not cross the wire")
	}
	if m["role"] != "assistant" || m["content"] != "hello" {
		t.Errorf("wire shape = %v", m)
	}
}
