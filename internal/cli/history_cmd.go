// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - show and clear the server-side history.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/recodex/recodex-tui/internal/action"
	"github.com/recodex/recodex-tui/internal/render"
	"github.com/recodex/recodex-tui/internal/ui/styles"
)

// HandleHistory lists past analyses and rewrites, newest first, or
// clears them with the "clear" subcommand.
func HandleHistory(ctx context.Context, ctrl *action.Controller, args []string) error {
	parser := NewArgParser(args)

	if parser.Subcommand() == "clear" {
		if !parser.BoolFlag("confirm") && !confirm("Clear all history?") {
			fmt.Println(styles.RenderInfo("Aborted."))
			return nil
		}
		notice, err := ctrl.ClearHistory(ctx)
		printNotice(notice)
		return err
	}

	entries, notice, err := ctrl.FetchHistory(ctx)
	if err != nil {
		printNotice(notice)
		return err
	}

	if parser.BoolFlag("json") {
		return json.NewEncoder(os.Stdout).Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println(styles.RenderInfo("History is empty."))
		return nil
	}
	for i, entry := range entries {
		fmt.Println(render.HistoryLine(i, entry))
	}
	return nil
}
