// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/recodex/recodex-tui/internal/action"
)

func TestToastManagerAdd(t *testing.T) {
	m := NewToastManager()

	id := m.Add(action.Notice{Title: "Analysis complete", Kind: action.NoticeSuccess})
	if id == 0 {
		t.Fatal("Add returned zero ID")
	}
	if !m.HasToasts() {
		t.Error("manager has no toasts after Add")
	}
}

func TestToastManagerIgnoresEmptyNotice(t *testing.T) {
	m := NewToastManager()

	if id := m.Add(action.Notice{}); id != 0 {
		t.Errorf("empty notice got ID %d, want 0", id)
	}
	if m.HasToasts() {
		t.Error("empty notice created a toast")
	}
}

func TestToastManagerNewestFirst(t *testing.T) {
	m := NewToastManager()
	m.Add(action.Notice{Title: "first"})
	m.Add(action.Notice{Title: "second"})

	toasts := m.Toasts()
	if len(toasts) != 2 {
		t.Fatalf("got %d toasts, want 2", len(toasts))
	}
	if toasts[0].Title != "second" {
		t.Errorf("newest toast is %q, want %q", toasts[0].Title, "second")
	}
}

func TestToastManagerMaxToasts(t *testing.T) {
	m := NewToastManager()
	for i := 0; i < 10; i++ {
		m.Add(action.Notice{Title: "toast"})
	}

	if got := len(m.Toasts()); got > 5 {
		t.Errorf("stack grew to %d toasts, want at most 5", got)
	}
}

func TestToastManagerDismiss(t *testing.T) {
	m := NewToastManager()
	id := m.Add(action.Notice{Title: "gone soon"})

	m.Dismiss(id)
	if m.HasToasts() {
		t.Error("toast still present after Dismiss")
	}
}

func TestToastManagerTickExpires(t *testing.T) {
	m := NewToastManager()
	m.Add(action.Notice{Title: "old"})

	// Force expiry by backdating.
	m.mu.Lock()
	m.toasts[0].CreatedAt = time.Now().Add(-time.Minute)
	m.mu.Unlock()

	if remaining := m.Tick(); len(remaining) != 0 {
		t.Errorf("expired toast survived Tick, %d remaining", len(remaining))
	}
}

func TestErrorToastLongerDuration(t *testing.T) {
	errToast := NewToast(action.Notice{Title: "boom", Kind: action.NoticeError})
	infoToast := NewToast(action.Notice{Title: "fyi", Kind: action.NoticeInfo})

	if errToast.Duration <= infoToast.Duration {
		t.Error("error toast should stay visible longer than info toast")
	}
}

func TestRenderToastContent(t *testing.T) {
	toast := NewToast(action.Notice{
		Title:   "Login failed",
		Message: "Network error or server is offline",
		Kind:    action.NoticeError,
	})

	out := RenderToast(toast, 80)
	if !strings.Contains(out, "Login failed") {
		t.Error("rendered toast missing title")
	}
	if !strings.Contains(out, "offline") {
		t.Error("rendered toast missing message")
	}
	if !strings.Contains(out, "ctrl+u dismiss") {
		t.Error("dismiss hint must name the bound key")
	}
}
