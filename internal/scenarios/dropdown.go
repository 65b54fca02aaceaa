package scenarios

import "github.com/vovakirdan/tui-popover/internal/geometry"

func init() {
	Register("dropdown", func() Scenario { return NewDropdown() })
}

// Dropdown is a select-style menu under a field. Anchored bottom-left and
// tall enough that moving the field toward the bottom edge flips it upward.
type Dropdown struct{}

// NewDropdown creates the dropdown scenario.
func NewDropdown() *Dropdown {
	return &Dropdown{}
}

func (d *Dropdown) ID() string    { return "dropdown" }
func (d *Dropdown) Title() string { return "Dropdown" }

// Anchor centers the field horizontally, two thirds down the viewport.
func (d *Dropdown) Anchor(viewport geometry.Size) geometry.Rect {
	w := 14
	x := geometry.Max(0, (viewport.Width-w)/2)
	y := viewport.Height * 2 / 3
	return geometry.NewRect(x, y, w, 1)
}

func (d *Dropdown) Content() []string {
	return []string{
		"┌────────────┐",
		"│ Apples     │",
		"│ Bananas    │",
		"│ Cherries   │",
		"│ Dates      │",
		"│ Elderberry │",
		"└────────────┘",
	}
}

func (d *Dropdown) Position() string { return "bottom-left" }
