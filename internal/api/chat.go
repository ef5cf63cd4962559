// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/recodex/recodex-tui/internal/model"
)

// ChatRequest carries the full transcript plus the current editor
// contents, so the assistant answers in context of the user's code.
type ChatRequest struct {
	Messages []model.ChatTurn `json:"messages"`
	Code     string           `json:"code"`
	Language string           `json:"language"`
}

// Chat sends the transcript and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, token string, req ChatRequest) (*model.ChatReply, error) {
	var reply model.ChatReply
	if err := c.do(ctx, http.MethodPost, "/api/chat", token, req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
