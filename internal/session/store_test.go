// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/recodex/recodex-tui/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestGetOnEmptyStoreIsGuest(t *testing.T) {
	s := newTestStore(t)
	got := s.Get()
	if !got.IsGuest || got.Token != "" || got.User != nil {
		t.Errorf("Get on empty store = %+v, want guest", got)
	}
}

func TestSetThenGet(t *testing.T) {
	s := newTestStore(t)
	user := model.User{ID: "u1", Name: "Ann", Email: "a@b.com"}
	if err := s.Set("tok1", user); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got := s.Get()
	if got.IsGuest {
		t.Fatal("session should not be guest after Set")
	}
	if got.Token != "tok1" || got.User == nil || got.User.Name != "Ann" {
		t.Errorf("Get = %+v", got)
	}
}

func TestSetRejectsEmptyToken(t *testing.T) {
	s := newTestStore(t)
	if err := s.Set("", model.User{ID: "u1"}); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestClearThenGetIsGuest(t *testing.T) {
	s := newTestStore(t)
	if err := s.Set("tok1", model.User{ID: "u1", Name: "Ann", Email: "a@b.com"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got := s.Get()
	if !got.IsGuest || got.Token != "" || got.User != nil {
		t.Errorf("Get after Clear = %+v, want guest", got)
	}
}

func TestSessionFilePermissions(t *testing.T) {
	s := newTestStore(t)
	if err := s.Set("tok1", model.User{ID: "u1"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("session file perm = %o, want 0600", perm)
	}
}

func TestCorruptFileReadsAsGuest(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := s.Get(); !got.IsGuest {
		t.Errorf("corrupt file should read as guest, got %+v", got)
	}
}

func TestPendingEmailIsOneShot(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetPendingEmail("a@b.com"); err != nil {
		t.Fatalf("SetPendingEmail: %v", err)
	}

	email, err := s.TakePendingEmail()
	if err != nil {
		t.Fatalf("TakePendingEmail: %v", err)
	}
	if email != "a@b.com" {
		t.Errorf("first take = %q", email)
	}

	email, err = s.TakePendingEmail()
	if err != nil {
		t.Fatalf("second take: %v", err)
	}
	if email != "" {
		t.Errorf("second take = %q, want empty", email)
	}
}

func TestPendingEmailSurvivesClear(t *testing.T) {
	s := newTestStore(t)
	if err := s.Set("tok1", model.User{ID: "u1"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.SetPendingEmail("a@b.com"); err != nil {
		t.Fatalf("SetPendingEmail: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	email, _ := s.TakePendingEmail()
	if email != "a@b.com" {
		t.Errorf("pending email after Clear = %q", email)
	}
}

func TestWatchSeesExternalWrite(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// Second store on the same directory plays the other process.
	other, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	other.path = s.path
	if err := other.Set("tok2", model.User{ID: "u2", Name: "Bea"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	select {
	case got := <-updates:
		if got.Token != "tok2" {
			t.Errorf("watched session = %+v", got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no watch event after external write")
	}
}
