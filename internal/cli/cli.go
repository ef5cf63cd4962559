// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for recodex.
package cli

import (
	"fmt"
	"os"
	"runtime"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogin
	CmdRegister
	CmdLogout
	CmdAnalyze
	CmdRewrite
	CmdRun
	CmdChat
	CmdHistory
	CmdProfile
	CmdDeleteAccount
	CmdConfig
	CmdVersion
	CmdHelp
)

const usageText = `recodex - AI code analysis in your terminal

ReCodeX analyzes, rewrites, and runs code through an AI backend.

Usage:
  recodex                       Start the interactive TUI (default)
  recodex login                 Sign in to your account
  recodex register              Create a new account
  recodex logout                Sign out
  recodex analyze [file]        Analyze code from a file or stdin
  recodex rewrite [file]        Rewrite code from a file or stdin
  recodex run [file]            Execute code on the backend sandbox
  recodex chat "message"        One-shot chat about a piece of code
  recodex history [clear]       Show or clear your analysis history
  recodex profile <name>        Change your display name
  recodex delete-account        Permanently delete your account
  recodex config [show|get|set] Configuration management
  recodex version               Show version information
  recodex help                  Show this help

Flags:
  --lang <language>   Language of the submitted code (default from config)
  --file <path>       Read code from a file instead of stdin
  --json              Machine-readable output where supported

Analysis, rewrite, and history require an account. Running code works
as a guest.
`

// Parse maps os.Args onto a command and its remaining arguments.
func Parse() (Command, []string) {
	args := os.Args[1:]
	if len(args) == 0 {
		return CmdTUI, nil
	}

	switch args[0] {
	case "login":
		return CmdLogin, args[1:]
	case "register", "signup":
		return CmdRegister, args[1:]
	case "logout":
		return CmdLogout, args[1:]
	case "analyze", "a":
		return CmdAnalyze, args[1:]
	case "rewrite", "rw":
		return CmdRewrite, args[1:]
	case "run", "exec":
		return CmdRun, args[1:]
	case "chat":
		return CmdChat, args[1:]
	case "history", "h":
		return CmdHistory, args[1:]
	case "profile":
		return CmdProfile, args[1:]
	case "delete-account":
		return CmdDeleteAccount, args[1:]
	case "config", "cfg":
		return CmdConfig, args[1:]
	case "version", "-v", "--version":
		return CmdVersion, args[1:]
	case "help", "-h", "--help":
		return CmdHelp, args[1:]
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		return CmdHelp, nil
	}
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(usageText)
}

// HandleVersion prints build information.
func HandleVersion() {
	fmt.Printf("recodex %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
