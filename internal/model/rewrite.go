// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// RewriteResult is the payload of one successful /api/rewrite call.
type RewriteResult struct {
	OriginalCode        string      `json:"original_code"`
	RewrittenCode       string      `json:"rewritten_code"`
	Explanation         string      `json:"explanation"`
	Improvements        []string    `json:"improvements"`
	OriginalComplexity  *Complexity `json:"original_complexity,omitempty"`
	RewrittenComplexity *Complexity `json:"rewritten_complexity,omitempty"`
}

// RunResult is the payload of one /api/run call. A 2xx response with
// Error set is a completed round trip whose program failed; it renders
// as error-styled console output, not as a request failure.
type RunResult struct {
	Success       bool    `json:"success"`
	Output        string  `json:"output,omitempty"`
	Error         string  `json:"error,omitempty"`
	ExecutionTime float64 `json:"execution_time"`
}
