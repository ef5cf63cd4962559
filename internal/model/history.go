// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// HistoryType distinguishes what kind of result a history entry holds.
type HistoryType string

const (
	HistoryAnalyze HistoryType = "analyze"
	HistoryRewrite HistoryType = "rewrite"
)

// HistoryEntry is one server-recorded past analyze or rewrite call. The
// backend owns these; the client only caches what it fetched, in server
// order (newest first). Result stays raw until the entry is restored,
// because its shape depends on Type.
type HistoryEntry struct {
	ID           string          `json:"_id"`
	Type         HistoryType     `json:"type"`
	Language     string          `json:"language"`
	OriginalCode string          `json:"original_code"`
	Result       json.RawMessage `json:"result"`
	Timestamp    time.Time       `json:"timestamp"`
}

// AnalysisResult decodes the stored result of an analyze entry.
func (e *HistoryEntry) AnalysisResult() (*AnalysisResult, error) {
	if e.Type != HistoryAnalyze {
		return nil, fmt.Errorf("history entry %s is %q, not analyze", e.ID, e.Type)
	}
	var r AnalysisResult
	if err := json.Unmarshal(e.Result, &r); err != nil {
		return nil, fmt.Errorf("decode analysis result: %w", err)
	}
	return &r, nil
}

// RewriteResult decodes the stored result of a rewrite entry.
func (e *HistoryEntry) RewriteResult() (*RewriteResult, error) {
	if e.Type != HistoryRewrite {
		return nil, fmt.Errorf("history entry %s is %q, not rewrite", e.ID, e.Type)
	}
	var r RewriteResult
	if err := json.Unmarshal(e.Result, &r); err != nil {
		return nil, fmt.Errorf("decode rewrite result: %w", err)
	}
	return &r, nil
}
