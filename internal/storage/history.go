// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the local mirror of fetched history entries,
// so the history view can show the last known list while the backend is
// unreachable. The backend owns history; every successful fetch replaces
// the mirror wholesale.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/recodex/recodex-tui/internal/model"
)

var ErrClosed = errors.New("history cache is closed")

// HistoryCache is a sqlite-backed read-through copy of the server's
// history list.
type HistoryCache struct {
	db *sql.DB
}

// DefaultPath returns ~/.recodex/history.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".recodex", "history.db"), nil
}

// OpenHistoryCache opens (creating if needed) the cache database.
func OpenHistoryCache(path string) (*HistoryCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite supports one writer; keep the pool at a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	c := &HistoryCache{db: db}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *HistoryCache) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id            TEXT PRIMARY KEY,
		type          TEXT NOT NULL,
		language      TEXT NOT NULL,
		original_code TEXT NOT NULL,
		result        TEXT NOT NULL,
		timestamp     TEXT NOT NULL,
		position      INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_position ON history(position);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// ReplaceAll swaps the cached list for the entries just fetched,
// preserving server order. Called after every successful history fetch.
func (c *HistoryCache) ReplaceAll(entries []model.HistoryEntry) error {
	if c.db == nil {
		return ErrClosed
	}
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO history (id, type, language, original_code, result, timestamp, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		_, err := stmt.Exec(
			e.ID,
			string(e.Type),
			e.Language,
			e.OriginalCode,
			string(e.Result),
			e.Timestamp.UTC().Format(time.RFC3339Nano),
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// All returns the cached entries in the order the server sent them.
func (c *HistoryCache) All() ([]model.HistoryEntry, error) {
	if c.db == nil {
		return nil, ErrClosed
	}
	rows, err := c.db.Query(`
		SELECT id, type, language, original_code, result, timestamp
		FROM history ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var e model.HistoryEntry
		var typ, result, ts string
		if err := rows.Scan(&e.ID, &typ, &e.Language, &e.OriginalCode, &result, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Type = model.HistoryType(typ)
		e.Result = []byte(result)
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp %q: %w", ts, err)
		}
		e.Timestamp = parsed
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear empties the cache, mirroring a server-side history clear.
func (c *HistoryCache) Clear() error {
	if c.db == nil {
		return ErrClosed
	}
	if _, err := c.db.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (c *HistoryCache) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
