package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-popover/internal/overlay"
)

// tintStyles maps overlay.Tint to lipgloss styles.
var tintStyles = map[overlay.Tint]lipgloss.Style{
	overlay.TintNone:     lipgloss.NewStyle(),
	overlay.TintAnchor:   lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("15")),
	overlay.TintBackdrop: lipgloss.NewStyle().Background(lipgloss.Color("236")),
	overlay.TintContent:  lipgloss.NewStyle().Background(lipgloss.Color("58")).Foreground(lipgloss.Color("15")),
	overlay.TintDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderCanvas converts a canvas to a styled string for display.
// Groups adjacent cells with the same tint to minimize ANSI escape sequences.
func RenderCanvas(c *overlay.Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same tint for efficiency
		x := 0
		for x < c.Width() {
			cell := c.GetCell(x, y)
			startTint := cell.Tint

			// Collect consecutive cells with same tint
			var run strings.Builder
			for x < c.Width() {
				cell = c.GetCell(x, y)
				if cell.Tint != startTint {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := tintStyles[startTint]
			if !ok {
				style = tintStyles[overlay.TintNone]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
