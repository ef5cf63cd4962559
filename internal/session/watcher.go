// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/recodex/recodex-tui/internal/model"
)

// Watch emits the current session whenever another process rewrites the
// session file, so a long-running TUI notices a login or logout done
// from a second terminal. The channel closes when ctx ends or the
// watcher fails.
//
// The parent directory is watched rather than the file itself: the
// atomic rename replaces the inode, which would silently detach a
// file-level watch.
func (s *Store) Watch(ctx context.Context) (<-chan model.Session, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan model.Session, 1)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				select {
				case out <- s.Get():
				default:
					// A pending notification already carries the
					// latest state; Get re-reads on receipt anyway.
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return out, nil
}
