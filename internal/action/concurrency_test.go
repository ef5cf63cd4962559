// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Concurrency tests for the controller: the TUI update loop, its
// request goroutines, and the session watcher all touch the controller
// at once.
package action

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recodex/recodex-tui/internal/api"
	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/session"
)

func newConcurrencyFixture(t *testing.T) *Controller {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_issues":0,"issues":[],"summary":"clean"}`))
	}))
	t.Cleanup(server.Close)

	store, err := session.NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("tok", model.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}))

	return NewController(api.New(server.URL), store)
}

// TestController_ConcurrentStarts checks that racing Start calls of the
// same kind admit exactly one winner.
func TestController_ConcurrentStarts(t *testing.T) {
	ctrl := newConcurrencyFixture(t)

	const workers = 50
	var wg sync.WaitGroup
	var admitted, rejected int
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := ctrl.StartAnalyze("print('hi')")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				admitted++
			} else if errors.Is(err, ErrBusy) {
				rejected++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, admitted, "exactly one Start should win")
	require.Equal(t, workers-1, rejected, "every loser should see ErrBusy")
	require.True(t, ctrl.Busy(KindAnalyze))
}

// TestController_ConcurrentViewReads checks that View snapshots stay
// consistent while results land.
func TestController_ConcurrentViewReads(t *testing.T) {
	ctrl := newConcurrencyFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ctrl.StartAnalyze("x = 1"); err == nil {
				ctrl.FinishAnalyze(&model.AnalysisResult{TotalIssues: 1}, nil)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			view := ctrl.View()
			if view.LastAnalysis != nil {
				_ = view.LastAnalysis.TotalIssues
			}
		}()
	}
	wg.Wait()

	view := ctrl.View()
	require.NotNil(t, view.LastAnalysis)
	require.Equal(t, 1, view.LastAnalysis.TotalIssues)
}

// TestController_ConcurrentApplySuggestion checks that a suggestion is
// consumed exactly once.
func TestController_ConcurrentApplySuggestion(t *testing.T) {
	ctrl := newConcurrencyFixture(t)

	_, err := ctrl.StartChat("make it faster")
	require.NoError(t, err)
	ctrl.FinishChat(&model.ChatReply{Success: true, Reply: "try this", NewCode: "fast code"}, nil)

	const workers = 20
	var wg sync.WaitGroup
	var applied int
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := ctrl.ApplySuggestion(); ok {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, applied, "suggestion must be consumed exactly once")
}
