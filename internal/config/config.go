// Package config provides YAML-based configuration loading for the popover
// demo platform.
package config

import (
	"time"

	"github.com/vovakirdan/tui-popover/internal/geometry"
)

// Config contains all configuration for a popover instance.
type Config struct {
	Placement PlacementConfig `yaml:"placement"`
	Behavior  BehaviorConfig  `yaml:"behavior"`
}

// PlacementConfig defines where the popover goes relative to its anchor.
type PlacementConfig struct {
	// Position is the requested placement token, e.g. "bottom-right".
	Position string        `yaml:"position"`
	Spacing  SpacingConfig `yaml:"spacing"`
	Insets   InsetsConfig  `yaml:"insets"`
}

// SpacingConfig is the gap between anchor and content, in cells.
type SpacingConfig struct {
	Horizontal int `yaml:"horizontal"`
	Vertical   int `yaml:"vertical"`
}

// InsetsConfig defines viewport-edge margins excluded from placement.
type InsetsConfig struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

// BehaviorConfig defines runtime behavior toggles.
type BehaviorConfig struct {
	// DebounceMS is the viewport-change remeasure delay in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`

	// Overlay enables the press-to-dismiss background interceptor.
	Overlay bool `yaml:"overlay"`

	// Debug enables region tinting.
	Debug bool `yaml:"debug"`
}

// Debounce returns the configured debounce delay as a duration.
// Zero or negative values mean "use the engine default".
func (c Config) Debounce() time.Duration {
	if c.Behavior.DebounceMS <= 0 {
		return 0
	}
	return time.Duration(c.Behavior.DebounceMS) * time.Millisecond
}

// Insets converts the configured margins to geometry insets.
func (c Config) Insets() geometry.Insets {
	return geometry.Insets{
		Top:    c.Placement.Insets.Top,
		Right:  c.Placement.Insets.Right,
		Bottom: c.Placement.Insets.Bottom,
		Left:   c.Placement.Insets.Left,
	}
}
