package scenarios

import "github.com/vovakirdan/tui-popover/internal/geometry"

func init() {
	Register("contextmenu", func() Scenario { return NewContextMenu() })
}

// ContextMenu is a right-click style action menu. Starts near the right edge
// so the bottom-right preference has to flip horizontally.
type ContextMenu struct{}

// NewContextMenu creates the context menu scenario.
func NewContextMenu() *ContextMenu {
	return &ContextMenu{}
}

func (c *ContextMenu) ID() string    { return "contextmenu" }
func (c *ContextMenu) Title() string { return "Context Menu" }

func (c *ContextMenu) Anchor(viewport geometry.Size) geometry.Rect {
	x := geometry.Max(0, viewport.Width-12)
	y := geometry.Max(0, viewport.Height/3)
	return geometry.NewRect(x, y, 6, 1)
}

func (c *ContextMenu) Content() []string {
	return []string{
		"┌───────────────┐",
		"│ Cut           │",
		"│ Copy          │",
		"│ Paste         │",
		"│───────────────│",
		"│ Rename        │",
		"│ Delete        │",
		"└───────────────┘",
	}
}

func (c *ContextMenu) Position() string { return "bottom-right" }
