package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-popover/internal/scenarios"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all demo scenarios",
	Long:  `Shows a list of all registered demo scenarios.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	infos := scenarios.List()

	if len(infos) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range infos {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print scenarios
	for _, s := range infos {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'popover demo <id>' to try a scenario.")
}
