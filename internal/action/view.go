// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package action

import "github.com/recodex/recodex-tui/internal/model"

// ViewState holds the latest displayed results. The slices are disjoint
// on purpose: each operation kind writes exactly one of them, so two
// in-flight operations of different kinds can never race on a slice.
// Every write replaces its slice wholesale, never merges.
type ViewState struct {
	LastAnalysis *model.AnalysisResult
	LastRewrite  *model.RewriteResult
	LastRun      *model.RunResult
	History      []model.HistoryEntry
	Chat         []model.ChatTurn

	// PendingSuggestion is the one unapplied code suggestion from the
	// assistant. A newer suggestion overwrites it; applying clears it.
	PendingSuggestion string
	HasSuggestion     bool
}

// snapshotChat returns a copy of the transcript safe to hand to the
// gateway while the live slice keeps growing.
func (v *ViewState) snapshotChat() []model.ChatTurn {
	out := make([]model.ChatTurn, len(v.Chat))
	copy(out, v.Chat)
	return out
}
