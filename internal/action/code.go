// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/recodex/recodex-tui/internal/api"
	"github.com/recodex/recodex-tui/internal/model"
)

// =============================================================================
// ANALYZE
// =============================================================================

// StartAnalyze guards and validates before an analysis call.
func (c *Controller) StartAnalyze(code string) error {
	if strings.TrimSpace(code) == "" {
		return &ValidationError{Field: "code", Message: "Please enter some code first"}
	}
	return c.begin(KindAnalyze)
}

// FinishAnalyze replaces the analysis slice on success. On failure the
// previous result stays visible.
func (c *Controller) FinishAnalyze(result *model.AnalysisResult, err error) Notice {
	if err != nil {
		c.settle(KindAnalyze, false)
		return failNotice(KindAnalyze, err)
	}
	c.mu.Lock()
	c.view.LastAnalysis = result
	c.mu.Unlock()
	c.settle(KindAnalyze, true)
	return successNotice("Analysis complete", fmt.Sprintf("%d issue(s) found", result.TotalIssues))
}

// Analyze runs the whole analysis synchronously.
func (c *Controller) Analyze(ctx context.Context, code, language string) (*model.AnalysisResult, Notice, error) {
	if err := c.StartAnalyze(code); err != nil {
		return nil, Notice{}, err
	}
	result, err := c.client.Analyze(ctx, c.Session().Token, api.CodeRequest{Code: code, Language: language})
	return result, c.FinishAnalyze(result, err), err
}

// =============================================================================
// REWRITE
// =============================================================================

// StartRewrite guards and validates before a rewrite call.
func (c *Controller) StartRewrite(code string) error {
	if strings.TrimSpace(code) == "" {
		return &ValidationError{Field: "code", Message: "Please enter some code first"}
	}
	return c.begin(KindRewrite)
}

// FinishRewrite replaces the rewrite slice on success.
func (c *Controller) FinishRewrite(result *model.RewriteResult, err error) Notice {
	if err != nil {
		c.settle(KindRewrite, false)
		return failNotice(KindRewrite, err)
	}
	c.mu.Lock()
	c.view.LastRewrite = result
	c.mu.Unlock()
	c.settle(KindRewrite, true)
	return successNotice("Rewrite complete", fmt.Sprintf("%d improvement(s) applied", len(result.Improvements)))
}

// Rewrite runs the whole rewrite synchronously.
func (c *Controller) Rewrite(ctx context.Context, code, language string) (*model.RewriteResult, Notice, error) {
	if err := c.StartRewrite(code); err != nil {
		return nil, Notice{}, err
	}
	result, err := c.client.Rewrite(ctx, c.Session().Token, api.CodeRequest{Code: code, Language: language})
	return result, c.FinishRewrite(result, err), err
}

// =============================================================================
// RUN
// =============================================================================

// StartRun validates the console input. Run is open to guests.
func (c *Controller) StartRun(code string) error {
	if strings.TrimSpace(code) == "" {
		return &ValidationError{Field: "code", Message: "Please enter some code first"}
	}
	return c.begin(KindRun)
}

// FinishRun stores the run output. A completed run whose program failed
// is still a success here: the console renders the error output, no
// failure notice fires.
func (c *Controller) FinishRun(result *model.RunResult, err error) Notice {
	if err != nil {
		c.settle(KindRun, false)
		return failNotice(KindRun, err)
	}
	c.mu.Lock()
	c.view.LastRun = result
	c.mu.Unlock()
	c.settle(KindRun, true)
	return Notice{}
}

// Run executes the code synchronously.
func (c *Controller) Run(ctx context.Context, code, language string) (*model.RunResult, Notice, error) {
	if err := c.StartRun(code); err != nil {
		return nil, Notice{}, err
	}
	result, err := c.client.RunCode(ctx, api.CodeRequest{Code: code, Language: language})
	return result, c.FinishRun(result, err), err
}
