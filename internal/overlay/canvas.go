// Package overlay provides the top-level render surface a popover is
// composited onto. It decouples placement from the terminal: callers draw
// with simple rune operations and region tints, and the platform layer turns
// the buffer into styled output.
package overlay

import (
	"strings"

	"github.com/vovakirdan/tui-popover/internal/geometry"
)

// Tint marks a cell as belonging to a highlighted region. Tints carry no
// layout meaning; they exist for the debug overlays and for styling at
// render time.
type Tint uint8

// Region tints. TintAnchor, TintBackdrop and TintContent are the
// semi-transparent debug washes over the anchor, the background interceptor
// and the popover content.
const (
	TintNone Tint = iota
	TintAnchor
	TintBackdrop
	TintContent
	TintDim
)

// Cell is a single canvas position.
type Cell struct {
	Rune rune
	Tint Tint
}

// Canvas is a 2D cell buffer sized to the viewport.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
	}
	c.allocate()
	c.Clear()
	return c
}

// allocate creates the underlying cell storage.
func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions, preserving content where possible.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}

	oldCells := c.cells
	oldW, oldH := c.width, c.height

	c.width = width
	c.height = height
	c.allocate()
	c.Clear()

	copyW := geometry.Min(oldW, width)
	copyH := geometry.Min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			c.cells[y][x] = oldCells[y][x]
		}
	}
}

// Clear fills the entire canvas with blank untinted cells.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position, keeping the cell's tint.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x].Rune = r
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (c *Canvas) GetCell(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond canvas bounds are clipped.
func (c *Canvas) DrawText(x, y int, text string) {
	for i, r := range text {
		c.Set(x+i, y, r)
	}
}

// DrawBlock writes a multi-line block with its top-left corner at (x, y).
// This is how popover content lands on the canvas once placed.
func (c *Canvas) DrawBlock(x, y int, block string) {
	for dy, line := range strings.Split(block, "\n") {
		c.DrawText(x, y+dy, line)
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (c *Canvas) DrawBox(r geometry.Rect) {
	c.Set(r.X, r.Y, '┌')
	c.Set(r.Right()-1, r.Y, '┐')
	c.Set(r.X, r.Bottom()-1, '└')
	c.Set(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		c.Set(x, r.Y, '─')
		c.Set(x, r.Bottom()-1, '─')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		c.Set(r.X, y, '│')
		c.Set(r.Right()-1, y, '│')
	}
}

// FillRect fills a rectangular area with the given rune, keeping tints.
func (c *Canvas) FillRect(r geometry.Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.Set(x, y, fill)
		}
	}
}

// TintRect applies a tint over a rectangular region without touching the
// runes underneath, like a translucent wash.
func (c *Canvas) TintRect(r geometry.Rect, tint Tint) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if x < 0 || x >= c.width || y < 0 || y >= c.height {
				continue
			}
			c.cells[y][x].Tint = tint
		}
	}
}

// TintAll applies a tint to every cell.
func (c *Canvas) TintAll(tint Tint) {
	c.TintRect(geometry.NewRect(0, 0, c.width, c.height), tint)
}

// String converts the canvas to a plain string, dropping tints.
// Each row is joined with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	runes := make([]rune, c.width)
	for x := 0; x < c.width; x++ {
		runes[x] = c.cells[y][x].Rune
	}
	return string(runes)
}
