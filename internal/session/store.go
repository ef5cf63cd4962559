// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the client-held authentication state: the bearer
// token, the user profile, and the one-shot pending-email handoff used
// between the register and login flows.
//
// State is a single JSON file under ~/.recodex. Writing token and user
// as one document through an atomic rename means no reader ever sees a
// token without its user or the reverse. The file is shared across
// processes with no locking; writes are rare and user-attributable, so
// last-writer-wins is acceptable.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/recodex/recodex-tui/internal/model"
	"github.com/recodex/recodex-tui/internal/util"
)

const sessionFile = "session.json"

// persisted is the on-disk shape. PendingEmail rides in the same file;
// it is independent of the auth fields.
type persisted struct {
	Token        string      `json:"token,omitempty"`
	User         *model.User `json:"user,omitempty"`
	PendingEmail string      `json:"pending_email,omitempty"`
}

// Store reads and writes the persisted session.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store rooted at dir (usually ~/.recodex).
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("session store directory is empty")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &Store{path: filepath.Join(dir, sessionFile)}, nil
}

// DefaultDir returns ~/.recodex.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".recodex"), nil
}

// Path returns the session file location.
func (s *Store) Path() string {
	return s.path
}

// Get returns the current session. A missing or unreadable file, or one
// without a token, yields the guest session. A token never comes back
// without its user.
func (s *Store) Get() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.read()
	if p.Token == "" || p.User == nil {
		return model.Guest()
	}
	return model.Session{Token: p.Token, User: p.User}
}

// Set persists the token and user together. Either both land or, on
// error, the previous state survives untouched.
func (s *Store) Set(token string, user model.User) error {
	if token == "" {
		return errors.New("refusing to persist an empty token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.read()
	p.Token = token
	p.User = &user
	return s.write(p)
}

// Clear removes the auth fields. A pending email, if any, survives so a
// fresh login form can still prefill it.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.read()
	p.Token = ""
	p.User = nil
	if p.PendingEmail == "" {
		// Nothing left worth keeping on disk.
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove session file: %w", err)
		}
		return nil
	}
	return s.write(p)
}

// SetPendingEmail stashes the email entered during registration so the
// login form can prefill it after the redirect.
func (s *Store) SetPendingEmail(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.read()
	p.PendingEmail = email
	return s.write(p)
}

// TakePendingEmail returns the stashed email and removes it. The value
// is one-shot: a second call returns "".
func (s *Store) TakePendingEmail() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.read()
	email := p.PendingEmail
	if email == "" {
		return "", nil
	}
	p.PendingEmail = ""
	if p.Token == "" && p.User == nil {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to remove session file: %w", err)
		}
		return email, nil
	}
	return email, s.write(p)
}

func (s *Store) read() persisted {
	var p persisted
	data, err := os.ReadFile(s.path)
	if err != nil {
		return p
	}
	// A corrupt file reads as guest; the next Set rewrites it whole.
	_ = json.Unmarshal(data, &p)
	return p
}

func (s *Store) write(p persisted) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	// SECURITY: 0600, the file holds a bearer token.
	if err := util.AtomicWriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}
