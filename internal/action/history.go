// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package action

import (
	"context"
	"fmt"

	"github.com/recodex/recodex-tui/internal/api"
	"github.com/recodex/recodex-tui/internal/model"
)

// =============================================================================
// FETCH
// =============================================================================

// StartHistoryFetch guards the history view behind a session.
func (c *Controller) StartHistoryFetch() error {
	return c.begin(KindHistoryFetch)
}

// FinishHistoryFetch replaces the history slice with the server's list
// and refreshes the offline mirror.
func (c *Controller) FinishHistoryFetch(resp *api.HistoryResponse, err error) Notice {
	if err != nil {
		c.settle(KindHistoryFetch, false)
		return failNotice(KindHistoryFetch, err)
	}
	c.mu.Lock()
	c.view.History = resp.History
	c.mu.Unlock()
	if c.cache != nil {
		// Mirror failures are not operation failures; the server copy
		// arrived fine.
		_ = c.cache.ReplaceAll(resp.History)
	}
	c.settle(KindHistoryFetch, true)
	return Notice{}
}

// FetchHistory fetches synchronously.
func (c *Controller) FetchHistory(ctx context.Context) ([]model.HistoryEntry, Notice, error) {
	if err := c.StartHistoryFetch(); err != nil {
		return nil, Notice{}, err
	}
	resp, err := c.client.FetchHistory(ctx, c.Session().Token)
	notice := c.FinishHistoryFetch(resp, err)
	if err != nil {
		return nil, notice, err
	}
	return resp.History, notice, nil
}

// LoadCachedHistory fills the history slice from the offline mirror,
// for display while the backend is unreachable.
func (c *Controller) LoadCachedHistory() error {
	if c.cache == nil {
		return nil
	}
	entries, err := c.cache.All()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.view.History = entries
	c.mu.Unlock()
	return nil
}

// =============================================================================
// CLEAR
// =============================================================================

// StartHistoryClear guards the bulk delete.
func (c *Controller) StartHistoryClear() error {
	return c.begin(KindHistoryClear)
}

// FinishHistoryClear empties the slice and the mirror once the server
// confirmed.
func (c *Controller) FinishHistoryClear(err error) Notice {
	if err != nil {
		c.settle(KindHistoryClear, false)
		return failNotice(KindHistoryClear, err)
	}
	c.mu.Lock()
	c.view.History = nil
	c.mu.Unlock()
	if c.cache != nil {
		_ = c.cache.Clear()
	}
	c.settle(KindHistoryClear, true)
	return successNotice("History cleared", "All past results removed.")
}

// ClearHistory clears synchronously.
func (c *Controller) ClearHistory(ctx context.Context) (Notice, error) {
	if err := c.StartHistoryClear(); err != nil {
		return Notice{}, err
	}
	err := c.client.ClearHistory(ctx, c.Session().Token)
	return c.FinishHistoryClear(err), err
}

// =============================================================================
// RESTORE
// =============================================================================

// Restored carries what a history restore hydrates: the editor gets the
// code and language back, and the matching result slice was replayed
// exactly as if the original call had just completed.
type Restored struct {
	Code     string
	Language string
	Type     model.HistoryType
}

// RestoreHistory replays a past entry into the view state. Purely
// local; no network.
func (c *Controller) RestoreHistory(entry model.HistoryEntry) (Restored, error) {
	switch entry.Type {
	case model.HistoryAnalyze:
		result, err := entry.AnalysisResult()
		if err != nil {
			return Restored{}, err
		}
		c.mu.Lock()
		c.view.LastAnalysis = result
		c.mu.Unlock()
	case model.HistoryRewrite:
		result, err := entry.RewriteResult()
		if err != nil {
			return Restored{}, err
		}
		c.mu.Lock()
		c.view.LastRewrite = result
		c.mu.Unlock()
	default:
		return Restored{}, fmt.Errorf("unknown history entry type %q", entry.Type)
	}
	return Restored{
		Code:     entry.OriginalCode,
		Language: entry.Language,
		Type:     entry.Type,
	}, nil
}
