package scenarios

import "github.com/vovakirdan/tui-popover/internal/geometry"

func init() {
	Register("tooltip", func() Scenario { return NewTooltip() })
}

// Tooltip is a small hint bubble above a short anchor, the classic case for
// the vertical flip when the anchor sits near the top edge.
type Tooltip struct{}

// NewTooltip creates the tooltip scenario.
func NewTooltip() *Tooltip {
	return &Tooltip{}
}

func (t *Tooltip) ID() string    { return "tooltip" }
func (t *Tooltip) Title() string { return "Tooltip" }

// Anchor starts the trigger near the top-left corner so the preferred
// top placement overflows immediately.
func (t *Tooltip) Anchor(viewport geometry.Size) geometry.Rect {
	return geometry.NewRect(4, 2, 8, 1)
}

func (t *Tooltip) Content() []string {
	return []string{
		"┌──────────────────┐",
		"│ Saved 2 mins ago │",
		"└──────────────────┘",
	}
}

func (t *Tooltip) Position() string { return "top-center" }
