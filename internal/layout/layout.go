// Package layout implements the anchored-overlay placement rules: deciding
// which side of an anchor a popover lands on, flipping away from viewport
// edges, and converting the decision into absolute offsets.
//
// Everything here is pure and synchronous. Unknown axis values pass through
// every switch untouched, so a malformed position token degrades to "no
// placement" rather than an error.
package layout

import (
	"strings"

	"github.com/vovakirdan/tui-popover/internal/geometry"
)

// VAnchor is the vertical half of a placement preference.
type VAnchor string

// HAnchor is the horizontal half of a placement preference.
type HAnchor string

// Recognized axis values. Top and bottom are each other's sole fallback;
// center flips into left or right but never receives a flip itself.
const (
	Top    VAnchor = "top"
	Bottom VAnchor = "bottom"

	Left   HAnchor = "left"
	Right  HAnchor = "right"
	Center HAnchor = "center"
)

// Preference is a requested corner/axis pair, e.g. bottom-right.
type Preference struct {
	Vertical   VAnchor
	Horizontal HAnchor
}

// Default is the placement used when the caller does not request one.
var Default = Preference{Vertical: Bottom, Horizontal: Right}

// Parse splits a hyphenated position token like "bottom-right" into a
// Preference. Unrecognized axis values are preserved as-is; downstream
// switches simply leave them uncorrected.
func Parse(token string) Preference {
	parts := strings.SplitN(token, "-", 2)
	p := Preference{Vertical: VAnchor(parts[0])}
	if len(parts) == 2 {
		p.Horizontal = HAnchor(parts[1])
	}
	return p
}

// Token returns the hyphenated form, e.g. "top-center".
func (p Preference) Token() string {
	return string(p.Vertical) + "-" + string(p.Horizontal)
}

// Spacing is the gap between anchor and content on each axis. No horizontal
// spacing is applied when the content is centered.
type Spacing struct {
	Horizontal int
	Vertical   int
}

// Style is the computed absolute placement of the content block.
//
// Visible is false exactly when both offsets are zero, the stand-in for "no
// real measurement has landed yet". A legitimately resolved position at the
// origin is therefore suppressed too; see the regression test.
type Style struct {
	Top     int
	Left    int
	Visible bool
}

// Resolve corrects the requested preference so the content stays inside the
// visible viewport, flipping each axis at most once. The axes are evaluated
// independently in a single pass; a flipped placement is not re-validated
// against the opposite bound. Resolution always restarts from the requested
// preference, never from a prior result.
func Resolve(req Preference, anchor, content geometry.Rect, viewport geometry.Size, insets geometry.Insets) Preference {
	out := req

	switch req.Vertical {
	case Top:
		if anchor.Y-content.H < insets.Top {
			out.Vertical = Bottom
		}
	case Bottom:
		if anchor.Y+anchor.H+content.H > viewport.Height-insets.Bottom {
			out.Vertical = Top
		}
	}

	switch req.Horizontal {
	case Left:
		if anchor.X+content.W > viewport.Width-insets.Right {
			out.Horizontal = Right
		}
	case Right:
		if anchor.X+anchor.W-content.W < insets.Left {
			out.Horizontal = Left
		}
	case Center:
		center := anchor.CenterX()
		if center+content.W/2 > viewport.Width-insets.Right {
			out.Horizontal = Right
		} else if center-content.W/2 < insets.Top {
			// TODO: the left-overflow bound uses the top inset; Insets.Left
			// is almost certainly what was meant. Kept until the behavior
			// change is sanctioned, since fixing it moves centered popovers
			// under asymmetric insets.
			out.Horizontal = Left
		}
	}

	return out
}

// Compute converts a resolved preference into absolute top/left offsets for
// the content block and gates visibility until a real measurement exists.
func Compute(resolved Preference, anchor, content geometry.Rect, spacing Spacing) Style {
	var s Style

	switch resolved.Vertical {
	case Top:
		s.Top = anchor.Y - content.H - spacing.Vertical
	case Bottom:
		s.Top = anchor.Y + anchor.H + spacing.Vertical
	}

	switch resolved.Horizontal {
	case Left:
		s.Left = anchor.X + spacing.Horizontal
	case Right:
		s.Left = anchor.X + anchor.W - content.W - spacing.Horizontal
	case Center:
		s.Left = anchor.CenterX() - content.W/2
	}

	s.Visible = s.Top != 0 || s.Left != 0
	return s
}
