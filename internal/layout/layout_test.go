package layout

import (
	"testing"

	"github.com/vovakirdan/tui-popover/internal/geometry"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token    string
		expected Preference
	}{
		{"bottom-right", Preference{Bottom, Right}},
		{"top-left", Preference{Top, Left}},
		{"top-center", Preference{Top, Center}},
		{"bottom-center", Preference{Bottom, Center}},
		{"sideways-diagonal", Preference{VAnchor("sideways"), HAnchor("diagonal")}},
		{"bottom", Preference{Bottom, HAnchor("")}},
		{"", Preference{VAnchor(""), HAnchor("")}},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			result := Parse(tc.token)
			if result != tc.expected {
				t.Errorf("Parse(%q) = %+v, expected %+v", tc.token, result, tc.expected)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for _, token := range []string{"bottom-right", "top-left", "bottom-center"} {
		if got := Parse(token).Token(); got != token {
			t.Errorf("Parse(%q).Token() = %q", token, got)
		}
	}
}

func TestResolveNoFlipWhenFits(t *testing.T) {
	// Anchor in the middle of a roomy viewport: every requested placement
	// fits and must come back unchanged.
	anchor := geometry.NewRect(40, 12, 10, 1)
	content := geometry.NewRect(0, 0, 12, 4)
	viewport := geometry.Size{Width: 100, Height: 30}

	prefs := []Preference{
		{Top, Left}, {Top, Right}, {Top, Center},
		{Bottom, Left}, {Bottom, Right}, {Bottom, Center},
	}

	for _, p := range prefs {
		t.Run(p.Token(), func(t *testing.T) {
			result := Resolve(p, anchor, content, viewport, geometry.Insets{})
			if result != p {
				t.Errorf("Resolve(%v) = %v, expected no flip", p, result)
			}
		})
	}
}

func TestResolveVerticalFlips(t *testing.T) {
	viewport := geometry.Size{Width: 100, Height: 30}
	content := geometry.NewRect(0, 0, 12, 5)

	tests := []struct {
		name     string
		req      VAnchor
		anchor   geometry.Rect
		insets   geometry.Insets
		expected VAnchor
	}{
		{
			name:     "top flips to bottom when content would go negative",
			req:      Top,
			anchor:   geometry.NewRect(40, 3, 10, 1), // 3-5 < 0
			expected: Bottom,
		},
		{
			name:     "top stays when content clears the top edge",
			req:      Top,
			anchor:   geometry.NewRect(40, 8, 10, 1), // 8-5 >= 0
			expected: Top,
		},
		{
			name:     "top respects top inset",
			req:      Top,
			anchor:   geometry.NewRect(40, 8, 10, 1),
			insets:   geometry.Insets{Top: 4}, // 8-5 < 4
			expected: Bottom,
		},
		{
			name:     "bottom flips to top when content exceeds viewport",
			req:      Bottom,
			anchor:   geometry.NewRect(40, 27, 10, 1), // 27+1+5 > 30
			expected: Top,
		},
		{
			name:     "bottom stays when content fits below",
			req:      Bottom,
			anchor:   geometry.NewRect(40, 20, 10, 1), // 20+1+5 <= 30
			expected: Bottom,
		},
		{
			name:     "bottom respects bottom inset",
			req:      Bottom,
			anchor:   geometry.NewRect(40, 22, 10, 1),
			insets:   geometry.Insets{Bottom: 3}, // 22+1+5 > 27
			expected: Top,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Resolve(Preference{tc.req, Left}, tc.anchor, content, viewport, tc.insets)
			if result.Vertical != tc.expected {
				t.Errorf("vertical = %v, expected %v", result.Vertical, tc.expected)
			}
		})
	}
}

func TestResolveHorizontalFlips(t *testing.T) {
	viewport := geometry.Size{Width: 100, Height: 30}

	tests := []struct {
		name     string
		req      HAnchor
		anchor   geometry.Rect
		content  geometry.Rect
		insets   geometry.Insets
		expected HAnchor
	}{
		{
			name:     "left flips to right past the right edge",
			req:      Left,
			anchor:   geometry.NewRect(92, 10, 6, 1),
			content:  geometry.NewRect(0, 0, 20, 4), // 92+20 > 100
			expected: Right,
		},
		{
			name:     "left stays when content fits",
			req:      Left,
			anchor:   geometry.NewRect(40, 10, 6, 1),
			content:  geometry.NewRect(0, 0, 20, 4),
			expected: Left,
		},
		{
			name:     "left respects right inset",
			req:      Left,
			anchor:   geometry.NewRect(75, 10, 6, 1),
			content:  geometry.NewRect(0, 0, 20, 4),
			insets:   geometry.Insets{Right: 8}, // 75+20 > 92
			expected: Right,
		},
		{
			name:     "right flips to left past the left edge",
			req:      Right,
			anchor:   geometry.NewRect(2, 10, 6, 1),
			content:  geometry.NewRect(0, 0, 20, 4), // 2+6-20 < 0
			expected: Left,
		},
		{
			name:     "right stays when content fits",
			req:      Right,
			anchor:   geometry.NewRect(40, 10, 6, 1),
			content:  geometry.NewRect(0, 0, 20, 4),
			expected: Right,
		},
		{
			name:     "right respects left inset",
			req:      Right,
			anchor:   geometry.NewRect(18, 10, 6, 1),
			content:  geometry.NewRect(0, 0, 20, 4),
			insets:   geometry.Insets{Left: 5}, // 18+6-20 < 5
			expected: Left,
		},
		{
			name:     "center resolves right when overflowing the right edge",
			req:      Center,
			anchor:   geometry.NewRect(86, 10, 10, 1), // center 91, 91+10 > 100
			content:  geometry.NewRect(0, 0, 20, 4),
			expected: Right,
		},
		{
			name:     "center resolves left when overflowing the left edge",
			req:      Center,
			anchor:   geometry.NewRect(2, 10, 10, 1), // center 7, 7-10 < 0
			content:  geometry.NewRect(0, 0, 20, 4),
			expected: Left,
		},
		{
			name:     "center kept when it fits",
			req:      Center,
			anchor:   geometry.NewRect(45, 10, 10, 1),
			content:  geometry.NewRect(0, 0, 20, 4),
			expected: Center,
		},
		{
			// The centered left-edge bound is checked against the top inset,
			// not the left one. Pinned here so a deliberate fix has to
			// update this test.
			name:     "center left-edge check reads the top inset",
			req:      Center,
			anchor:   geometry.NewRect(10, 10, 10, 1), // center 15, 15-10 = 5
			content:  geometry.NewRect(0, 0, 20, 4),
			insets:   geometry.Insets{Left: 8}, // would trigger if left were used
			expected: Center,
		},
		{
			name:     "center left-edge flip triggered by the top inset",
			req:      Center,
			anchor:   geometry.NewRect(10, 10, 10, 1), // center 15, 15-10 = 5
			content:  geometry.NewRect(0, 0, 20, 4),
			insets:   geometry.Insets{Top: 8}, // 5 < 8
			expected: Left,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Resolve(Preference{Bottom, tc.req}, tc.anchor, tc.content, viewport, tc.insets)
			if result.Horizontal != tc.expected {
				t.Errorf("horizontal = %v, expected %v", result.Horizontal, tc.expected)
			}
		})
	}
}

func TestResolveAxesIndependent(t *testing.T) {
	// Anchor crammed into the bottom-right corner: both axes overflow and
	// both must flip in the same pass, each ignoring the other's outcome.
	anchor := geometry.NewRect(95, 28, 4, 1)
	content := geometry.NewRect(0, 0, 20, 5)
	viewport := geometry.Size{Width: 100, Height: 30}

	result := Resolve(Preference{Bottom, Left}, anchor, content, viewport, geometry.Insets{})
	expected := Preference{Top, Right}
	if result != expected {
		t.Errorf("Resolve = %v, expected %v", result, expected)
	}
}

func TestResolveUnknownAxesPreserved(t *testing.T) {
	req := Preference{VAnchor("middle"), HAnchor("everywhere")}
	result := Resolve(req, geometry.NewRect(0, 0, 1, 1), geometry.NewRect(0, 0, 50, 50), geometry.Size{Width: 10, Height: 10}, geometry.Insets{})
	if result != req {
		t.Errorf("unknown axis values should pass through, got %v", result)
	}
}

func TestResolveIdempotent(t *testing.T) {
	anchor := geometry.NewRect(3, 2, 8, 1)
	content := geometry.NewRect(0, 0, 25, 6)
	viewport := geometry.Size{Width: 80, Height: 24}
	insets := geometry.Insets{Top: 1, Bottom: 1}
	req := Preference{Top, Right}

	first := Resolve(req, anchor, content, viewport, insets)
	second := Resolve(req, anchor, content, viewport, insets)
	if first != second {
		t.Errorf("Resolve not idempotent: %v then %v", first, second)
	}
}

func TestComputeOffsets(t *testing.T) {
	anchor := geometry.NewRect(10, 20, 100, 50)
	content := geometry.NewRect(0, 0, 80, 40)

	tests := []struct {
		name     string
		resolved Preference
		spacing  Spacing
		top      int
		left     int
	}{
		{
			name:     "bottom-left with spacing",
			resolved: Preference{Bottom, Left},
			spacing:  Spacing{Horizontal: 5, Vertical: 5},
			top:      75, // 20+50+5
			left:     15, // 10+5
		},
		{
			name:     "top-right without spacing",
			resolved: Preference{Top, Right},
			top:      -20, // 20-40
			left:     30,  // 10+100-80
		},
		{
			name:     "top-left with vertical spacing",
			resolved: Preference{Top, Left},
			spacing:  Spacing{Vertical: 2},
			top:      -22, // 20-40-2
			left:     10,
		},
		{
			name:     "bottom-right with spacing",
			resolved: Preference{Bottom, Right},
			spacing:  Spacing{Horizontal: 3, Vertical: 1},
			top:      71, // 20+50+1
			left:     27, // 10+100-80-3
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Compute(tc.resolved, anchor, content, tc.spacing)
			if s.Top != tc.top || s.Left != tc.left {
				t.Errorf("Compute = {top:%d left:%d}, expected {top:%d left:%d}", s.Top, s.Left, tc.top, tc.left)
			}
			if !s.Visible {
				t.Error("non-origin offsets should be visible")
			}
		})
	}
}

func TestComputeCenterIgnoresHorizontalSpacing(t *testing.T) {
	anchor := geometry.NewRect(100, 5, 100, 2)
	content := geometry.NewRect(0, 0, 60, 4)

	s := Compute(Preference{Bottom, Center}, anchor, content, Spacing{Horizontal: 9, Vertical: 0})
	if s.Left != 120 { // 100+50-30
		t.Errorf("centered left = %d, expected 120", s.Left)
	}
}

func TestComputeVisibilityGate(t *testing.T) {
	// A placement landing exactly on the origin is suppressed even though it
	// is a legitimate position: the zero offset doubles as "unmeasured".
	anchor := geometry.NewRect(0, 0, 0, 0)
	content := geometry.NewRect(0, 0, 0, 0)

	s := Compute(Preference{Bottom, Left}, anchor, content, Spacing{})
	if s.Top != 0 || s.Left != 0 {
		t.Fatalf("expected origin offsets, got {top:%d left:%d}", s.Top, s.Left)
	}
	if s.Visible {
		t.Error("origin offsets must suppress visibility")
	}

	// Known false negative: a real resolved position at the origin.
	anchor = geometry.NewRect(0, 0, 10, 0)
	s = Compute(Preference{Bottom, Left}, anchor, content, Spacing{})
	if s.Top != 0 || s.Left != 0 {
		t.Fatalf("expected origin offsets, got {top:%d left:%d}", s.Top, s.Left)
	}
	if s.Visible {
		t.Error("legitimate origin placement is still suppressed by the gate")
	}
}

func TestComputeUnknownAxesLeaveZeroOffsets(t *testing.T) {
	anchor := geometry.NewRect(10, 20, 100, 50)
	content := geometry.NewRect(0, 0, 80, 40)

	s := Compute(Preference{VAnchor("nope"), HAnchor("nah")}, anchor, content, Spacing{})
	if s.Top != 0 || s.Left != 0 || s.Visible {
		t.Errorf("unknown axes should produce hidden origin style, got %+v", s)
	}
}
