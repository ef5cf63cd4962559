// recodex - AI code analysis, rewriting, and execution in the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/recodex/recodex-tui/internal/action"
	"github.com/recodex/recodex-tui/internal/api"
	"github.com/recodex/recodex-tui/internal/cli"
	"github.com/recodex/recodex-tui/internal/config"
	"github.com/recodex/recodex-tui/internal/session"
	"github.com/recodex/recodex-tui/internal/storage"
	"github.com/recodex/recodex-tui/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	if cmd == cli.CmdHelp {
		cli.HandleHelp()
		return
	}
	if cmd == cli.CmdVersion {
		cli.HandleVersion()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	sessionDir, err := session.DefaultDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := session.NewStore(sessionDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session store: %v\n", err)
		os.Exit(1)
	}

	client := api.New(cfg.API.BaseURL,
		api.WithTimeout(time.Duration(cfg.API.TimeoutSecs)*time.Second),
		api.WithUserAgent("recodex/"+Version),
	)

	opts := []action.Option{}
	if cfg.History.CacheEnabled {
		cachePath := cfg.History.CachePath
		if cachePath == "" {
			cachePath = filepath.Join(sessionDir, "history.db")
		}
		if cache, err := storage.OpenHistoryCache(cachePath); err == nil {
			defer cache.Close()
			opts = append(opts, action.WithHistoryCache(cache))
		}
		// A broken cache never blocks the app; history just stays
		// online-only.
	}

	ctrl := action.NewController(client, store, opts...)
	ctx := context.Background()

	var cmdErr error
	switch cmd {
	case cli.CmdTUI:
		cmdErr = runTUI(ctrl, cfg, store)
	case cli.CmdLogin:
		cmdErr = cli.HandleLogin(ctx, ctrl, store)
	case cli.CmdRegister:
		cmdErr = cli.HandleRegister(ctx, ctrl)
	case cli.CmdLogout:
		cmdErr = cli.HandleLogout(ctrl, store)
	case cli.CmdAnalyze:
		cmdErr = cli.HandleAnalyze(ctx, ctrl, cfg, args)
	case cli.CmdRewrite:
		cmdErr = cli.HandleRewrite(ctx, ctrl, cfg, args)
	case cli.CmdRun:
		cmdErr = cli.HandleRun(ctx, ctrl, cfg, args)
	case cli.CmdChat:
		cmdErr = cli.HandleChat(ctx, ctrl, cfg, args)
	case cli.CmdHistory:
		cmdErr = cli.HandleHistory(ctx, ctrl, args)
	case cli.CmdProfile:
		cmdErr = cli.HandleProfile(ctx, ctrl, args)
	case cli.CmdDeleteAccount:
		cmdErr = cli.HandleDeleteAccount(ctx, ctrl)
	case cli.CmdConfig:
		cmdErr = cli.HandleConfig(cfg, args)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		os.Exit(1)
	}
}

func runTUI(ctrl *action.Controller, cfg *config.Config, store *session.Store) error {
	// Stderr belongs to the alt screen while the TUI runs; debug output
	// goes to a file instead.
	if os.Getenv("RECODEX_DEBUG") != "" {
		if dir, err := session.DefaultDir(); err == nil {
			f, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "recodex")
			if err == nil {
				defer f.Close()
			}
		}
	}

	app := ui.New(ctrl, cfg, store)
	defer app.Close()

	program := tea.NewProgram(app, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
