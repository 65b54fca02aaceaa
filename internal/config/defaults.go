package config

import (
	_ "embed"
)

//go:embed defaults/popover.yaml
var defaultPopoverYAML []byte

// Default returns the default popover configuration.
func Default() Config {
	return Config{
		Placement: PlacementConfig{
			Position: "bottom-right",
		},
		Behavior: BehaviorConfig{
			DebounceMS: 100,
			Overlay:    true,
			Debug:      false,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultPopoverYAML
}
