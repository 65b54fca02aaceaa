// popover is a TUI playground for an anchored popover positioning engine.
//
// Usage:
//
//	popover list                 - List available demo scenarios
//	popover demo <scenario>      - Run a scenario interactively
//	popover presets              - Browse saved placement presets
//	popover serve                - Start SSH server for remote demos
//
// Global flags:
//
//	--config <path> - Set config file path (default: ~/.popover/config.yaml)
//	--db <path>     - Set database path (default: ~/.popover/presets.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "popover",
	Short: "Anchored popover playground for your terminal",
	Long: `popover is a terminal playground for an anchored-overlay positioning
engine: tooltips, dropdowns and context menus that measure their anchor,
flip away from viewport edges and dismiss on background presses.

Available commands:
  list     - Show all demo scenarios
  demo     - Run a scenario interactively
  presets  - Browse saved placement presets
  serve    - Start SSH server for remote demos

Examples:
  popover list
  popover demo tooltip
  popover demo dropdown --position top-left
  popover serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default search: ~/.popover/config.yaml, ./popover.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.popover/presets.db", "Path to presets database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
}
