// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/recodex/recodex-tui/internal/model"
)

// CodeRequest is the shared body of analyze, rewrite, and run.
type CodeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// Analyze submits code for issue analysis. The token is optional; the
// backend records a history entry only for authenticated calls.
func (c *Client) Analyze(ctx context.Context, token string, req CodeRequest) (*model.AnalysisResult, error) {
	var result model.AnalysisResult
	if err := c.do(ctx, http.MethodPost, "/api/analyze", token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Rewrite submits code for an improved rewrite.
func (c *Client) Rewrite(ctx context.Context, token string, req CodeRequest) (*model.RewriteResult, error) {
	var result model.RewriteResult
	if err := c.do(ctx, http.MethodPost, "/api/rewrite", token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RunCode executes code in the backend sandbox. No auth: the run
// console works in guest mode. A 2xx with Error set means the program
// failed, not the request.
func (c *Client) RunCode(ctx context.Context, req CodeRequest) (*model.RunResult, error) {
	var result model.RunResult
	if err := c.do(ctx, http.MethodPost, "/api/run", "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
