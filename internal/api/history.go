// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/recodex/recodex-tui/internal/model"
)

// HistoryResponse is the success shape of the history fetch. Entries
// arrive in server order, newest first.
type HistoryResponse struct {
	History []model.HistoryEntry `json:"history"`
	Count   int                  `json:"count"`
}

// FetchHistory returns the authenticated user's past analyze/rewrite
// calls.
func (c *Client) FetchHistory(ctx context.Context, token string) (*HistoryResponse, error) {
	var resp HistoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/history", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClearHistory bulk-deletes the user's history. Entries are never
// deleted individually.
func (c *Client) ClearHistory(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/history", token, nil, nil)
}
