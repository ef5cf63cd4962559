// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - show, get, and set configuration values.
package cli

import (
	"fmt"

	"github.com/recodex/recodex-tui/internal/config"
	"github.com/recodex/recodex-tui/internal/ui/styles"
)

// HandleConfig manages the configuration file.
//
//	recodex config            Show all settings
//	recodex config get <key>
//	recodex config set <key> <value>
//	recodex config path
func HandleConfig(cfg *config.Config, args []string) error {
	parser := NewArgParser(args)
	positional := parser.Positional()

	switch parser.Subcommand() {
	case "", "show":
		for _, key := range config.Keys() {
			value, err := cfg.Get(key)
			if err != nil {
				continue
			}
			fmt.Printf("%-22s = %s\n", key, value)
		}
		return nil

	case "get":
		if len(positional) < 2 {
			return fmt.Errorf("usage: recodex config get <key>")
		}
		value, err := cfg.Get(positional[1])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil

	case "set":
		if len(positional) < 3 {
			return fmt.Errorf("usage: recodex config set <key> <value>")
		}
		if err := cfg.Set(positional[1], positional[2]); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Println(styles.RenderSuccess(positional[1] + " = " + positional[2]))
		return nil

	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil

	default:
		return fmt.Errorf("unknown config subcommand: %s", parser.Subcommand())
	}
}
