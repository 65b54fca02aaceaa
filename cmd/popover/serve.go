package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-popover/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHScenario string
	flagSSHPreset   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the popover demo SSH server",
	Long: `Start an SSH server that serves the popover demo to remote users.

Each SSH connection gets its own session sized to its PTY.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.popover/host_key

Examples:
  popover serve                           # Listen on :23234 with auto-generated key
  popover serve --ssh :2222               # Listen on port 2222
  popover serve --scenario dropdown       # Serve the dropdown scenario
  popover serve --preset mymenu           # Apply a saved preset to sessions

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHScenario, "scenario", "tooltip", "Scenario served to sessions")
	serveCmd.Flags().StringVar(&flagSSHPreset, "preset", "", "Saved preset applied to sessions")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		ScenarioID:  flagSSHScenario,
		Preset:      flagSSHPreset,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting popover SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
