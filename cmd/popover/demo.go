package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-popover/internal/config"
	"github.com/vovakirdan/tui-popover/internal/platform/tui"
	"github.com/vovakirdan/tui-popover/internal/scenarios"
	"github.com/vovakirdan/tui-popover/internal/storage"
)

var (
	flagPosition string
	flagPreset   string
	flagDebounce int
	flagDebug    bool
)

var demoCmd = &cobra.Command{
	Use:   "demo <scenario>",
	Short: "Run a demo scenario interactively",
	Long: `Run a popover demo scenario. Move the anchor with the arrow keys and
watch the engine flip the popover away from the viewport edges.

Keys:
  arrows     - Move the anchor
  space      - Open/close the popover
  tab        - Cycle the requested position
  d          - Toggle debug tints
  o          - Toggle the background interceptor
  q          - Quit

Examples:
  popover demo tooltip
  popover demo dropdown --position top-left
  popover demo contextmenu --preset mymenu --debug`,
	Args: cobra.ExactArgs(1),
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&flagPosition, "position", "", "Override the requested position (e.g. bottom-left)")
	demoCmd.Flags().StringVar(&flagPreset, "preset", "", "Load placement settings from a saved preset")
	demoCmd.Flags().IntVar(&flagDebounce, "debounce", 0, "Viewport-change remeasure delay in ms (0 = use config)")
	demoCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with debug tints enabled")
}

func runDemo(_ *cobra.Command, args []string) {
	scenarioID := args[0]
	if !scenarios.Exists(scenarioID) {
		fmt.Fprintf(os.Stderr, "Unknown scenario %q. Run 'popover list' to see scenarios.\n", scenarioID)
		os.Exit(1)
	}

	cfg, err := loadDemoConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagPosition != "" {
		cfg.Placement.Position = flagPosition
	}
	if flagDebounce > 0 {
		cfg.Behavior.DebounceMS = flagDebounce
	}
	if flagDebug {
		cfg.Behavior.Debug = true
	}

	if err := tui.Run(scenarioID, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}

// loadDemoConfig resolves the effective configuration: preset from the
// database when requested, the config file otherwise.
func loadDemoConfig() (config.Config, error) {
	if flagPreset != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return config.Config{}, err
		}
		defer store.Close()

		p, err := store.GetPreset(flagPreset)
		if err != nil {
			return config.Config{}, err
		}
		if p == nil {
			return config.Config{}, fmt.Errorf("preset %q not found", flagPreset)
		}
		return p.Config(), nil
	}

	return config.Load(flagConfig)
}
