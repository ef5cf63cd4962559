// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/recodex/recodex-tui/internal/model"
)

func TestRenderStatusBarGuest(t *testing.T) {
	bar := RenderStatusBar(model.Guest(), "python", false, nil, 80)
	if !strings.Contains(bar, "guest") {
		t.Error("guest session must show guest identity")
	}
	if !strings.Contains(bar, "python") {
		t.Error("status bar must show the active language")
	}
}

func TestRenderStatusBarTruncatesLongName(t *testing.T) {
	long := strings.Repeat("Wolfeschlegelsteinhausen", 3)
	sess := model.Session{
		Token: "tok",
		User:  &model.User{Name: long, Email: "w@example.com"},
	}
	shortcuts := []Shortcut{{Key: "ctrl+a", Desc: "analyze"}}

	bar := RenderStatusBar(sess, "go", false, shortcuts, 80)
	if strings.Contains(bar, long) {
		t.Error("full name should be truncated to fit the bar")
	}
	if !strings.Contains(bar, "...") {
		t.Error("truncated name should carry an ellipsis")
	}
	if !strings.Contains(bar, "analyze") {
		t.Error("shortcut hints must survive a long name")
	}
}
