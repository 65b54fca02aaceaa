package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-popover/internal/config"
	"github.com/vovakirdan/tui-popover/internal/platform/tui"
	"github.com/vovakirdan/tui-popover/internal/storage"
)

var (
	flagSavePosition string
	flagSaveHSpace   int
	flagSaveVSpace   int
	flagSaveOverlay  bool
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Browse saved placement presets",
	Long: `Open an interactive browser for saved placement presets.

Selecting a preset prints its name so it can be fed back into
'popover demo --preset <name>'.`,
	Run: runPresets,
}

var presetsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a placement preset",
	Long: `Save the given placement settings under a name. Saving to an existing
name replaces it.

Examples:
  popover presets save mymenu --position top-left
  popover presets save tight --hspacing 1 --vspacing 1 --overlay=false`,
	Args: cobra.ExactArgs(1),
	Run:  runPresetsSave,
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a placement preset",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetsDelete,
}

func init() {
	presetsSaveCmd.Flags().StringVar(&flagSavePosition, "position", "bottom-right", "Requested position token")
	presetsSaveCmd.Flags().IntVar(&flagSaveHSpace, "hspacing", 0, "Horizontal spacing in cells")
	presetsSaveCmd.Flags().IntVar(&flagSaveVSpace, "vspacing", 0, "Vertical spacing in cells")
	presetsSaveCmd.Flags().BoolVar(&flagSaveOverlay, "overlay", true, "Enable the background interceptor")

	presetsCmd.AddCommand(presetsSaveCmd)
	presetsCmd.AddCommand(presetsDeleteCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runPresets(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	selected, err := tui.RunPresetBrowser(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running preset browser: %v\n", err)
		os.Exit(1)
	}

	if selected != "" {
		fmt.Println(selected)
	}
}

func runPresetsSave(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	cfg := config.Default()
	cfg.Placement.Position = flagSavePosition
	cfg.Placement.Spacing = config.SpacingConfig{
		Horizontal: flagSaveHSpace,
		Vertical:   flagSaveVSpace,
	}
	cfg.Behavior.Overlay = flagSaveOverlay

	if _, err := store.SavePreset(storage.PresetFromConfig(args[0], cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving preset: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved preset %q.\n", args[0])
}

func runPresetsDelete(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeletePreset(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting preset: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Deleted preset %q.\n", args[0])
}
