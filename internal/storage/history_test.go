// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/recodex/recodex-tui/internal/model"
)

func openTestCache(t *testing.T) *HistoryCache {
	t.Helper()
	c, err := OpenHistoryCache(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenHistoryCache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func sampleEntries() []model.HistoryEntry {
	return []model.HistoryEntry{
		{
			ID:           "h2",
			Type:         model.HistoryRewrite,
			Language:     "go",
			OriginalCode: "func main() {}",
			Result:       json.RawMessage(`{"original_code":"func main() {}","rewritten_code":"func main() {\n}"}`),
			Timestamp:    time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:           "h1",
			Type:         model.HistoryAnalyze,
			Language:     "python",
			OriginalCode: "print(1)",
			Result:       json.RawMessage(`{"total_issues":0,"issues":[],"summary":"clean"}`),
			Timestamp:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestReplaceAllPreservesServerOrder(t *testing.T) {
	c := openTestCache(t)
	if err := c.ReplaceAll(sampleEntries()); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	got, err := c.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	// Newest-first order as the server sent it, not timestamp-sorted
	// locally.
	if got[0].ID != "h2" || got[1].ID != "h1" {
		t.Errorf("order = %s, %s", got[0].ID, got[1].ID)
	}
	if got[1].Type != model.HistoryAnalyze || got[1].Language != "python" {
		t.Errorf("entry = %+v", got[1])
	}
	if a, err := got[1].AnalysisResult(); err != nil || a.Summary != "clean" {
		t.Errorf("result round trip: %v %+v", err, a)
	}
	if !got[0].Timestamp.Equal(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("timestamp = %v", got[0].Timestamp)
	}
}

func TestReplaceAllIsWholesale(t *testing.T) {
	c := openTestCache(t)
	if err := c.ReplaceAll(sampleEntries()); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	// A later fetch returned a shorter list; stale rows must vanish.
	if err := c.ReplaceAll(sampleEntries()[:1]); err != nil {
		t.Fatalf("second ReplaceAll: %v", err)
	}
	got, err := c.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 1 || got[0].ID != "h2" {
		t.Errorf("got %d entries", len(got))
	}
}

func TestClear(t *testing.T) {
	c := openTestCache(t)
	if err := c.ReplaceAll(sampleEntries()); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err := c.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("cache not empty after Clear: %d entries", len(got))
	}
}

func TestUseAfterClose(t *testing.T) {
	c := openTestCache(t)
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.ReplaceAll(nil); err != ErrClosed {
		t.Errorf("ReplaceAll after Close = %v, want ErrClosed", err)
	}
	if _, err := c.All(); err != ErrClosed {
		t.Errorf("All after Close = %v, want ErrClosed", err)
	}
}
