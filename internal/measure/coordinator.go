// Package measure keeps the anchor and content rectangles of a popover
// reasonably fresh. It owns the measured state, the debounce bookkeeping for
// viewport changes, and the recompute pipeline that turns committed
// measurements into a resolved placement.
//
// All mutation happens on the UI loop: asynchronous measurements run
// elsewhere, but their results are committed here one message at a time, so
// no locking is needed.
package measure

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-popover/internal/geometry"
	"github.com/vovakirdan/tui-popover/internal/layout"
)

// DefaultDebounce is how long to wait after a viewport change before
// remeasuring the anchor, letting the host's own relayout settle first.
const DefaultDebounce = 100 * time.Millisecond

// Handle is an opaque measurable identifier minted by the overlay host when
// an element mounts. The coordinator never inspects it.
type Handle any

// Provider asynchronously measures elements in screen coordinates. A
// measurement for a handle that has since become invalid should return an
// error; the coordinator treats any failure as a silent skip.
type Provider interface {
	Measure(ctx context.Context, h Handle) (geometry.Rect, error)
}

// Frame is the output of one recompute pass: the resolved placement plus the
// inputs it was derived from, handed to render callbacks.
type Frame struct {
	Requested layout.Preference
	Resolved  layout.Preference
	Style     layout.Style
	Anchor    geometry.Rect
	Content   geometry.Rect
	Viewport  geometry.Size
	Spacing   layout.Spacing
}

// Coordinator owns the measured anchor/content rects and every input the
// resolver needs. Rects start at zero, are populated by measurement after
// the popover opens, and go stale (retain their last value) when it closes.
type Coordinator struct {
	provider Provider

	anchorHandle  Handle
	contentHandle Handle

	anchor  geometry.Rect
	content geometry.Rect

	viewport  geometry.Size
	insets    geometry.Insets
	requested layout.Preference
	spacing   layout.Spacing
	open      bool

	debounce time.Duration
	seq      int // Debounce generation; only the latest pending timer counts
}

// NewCoordinator creates a coordinator backed by the given provider.
func NewCoordinator(p Provider) *Coordinator {
	return &Coordinator{
		provider:  p,
		requested: layout.Default,
		debounce:  DefaultDebounce,
	}
}

// SetOpen records whether the popover is open. Measurement triggers on the
// open transition are driven by the host, not here.
func (c *Coordinator) SetOpen(open bool) {
	c.open = open
}

// Open reports whether the popover is currently open.
func (c *Coordinator) Open() bool {
	return c.open
}

// SetAnchorHandle records the measurable handle for the anchor element.
func (c *Coordinator) SetAnchorHandle(h Handle) {
	c.anchorHandle = h
}

// SetContentHandle records the measurable handle for the content element.
func (c *Coordinator) SetContentHandle(h Handle) {
	c.contentHandle = h
}

// AnchorHandle returns the current anchor handle, nil if none is mounted.
func (c *Coordinator) AnchorHandle() Handle { return c.anchorHandle }

// ContentHandle returns the current content handle, nil if none is mounted.
func (c *Coordinator) ContentHandle() Handle { return c.contentHandle }

// SetPreference replaces the requested placement. Resolution always restarts
// from this value; previous flip outcomes never accumulate.
func (c *Coordinator) SetPreference(p layout.Preference) {
	c.requested = p
}

// SetSpacing replaces the anchor/content gap.
func (c *Coordinator) SetSpacing(s layout.Spacing) {
	c.spacing = s
}

// SetInsets replaces the safe-area margins.
func (c *Coordinator) SetInsets(i geometry.Insets) {
	c.insets = i
}

// SetDebounce overrides the viewport-change debounce delay.
func (c *Coordinator) SetDebounce(d time.Duration) {
	if d > 0 {
		c.debounce = d
	}
}

// Debounce returns the current debounce delay.
func (c *Coordinator) Debounce() time.Duration {
	return c.debounce
}

// MeasureAnchor queries the provider for the anchor's current rect. The
// returned ok is false when no handle is mounted or the provider failed, in
// which case the measurement is skipped with no retry. Safe to call from a
// background command: it only reads the handle captured at call time and
// commits nothing.
func (c *Coordinator) MeasureAnchor(ctx context.Context) (geometry.Rect, bool) {
	return c.measure(ctx, c.anchorHandle)
}

// MeasureContent is MeasureAnchor for the content element.
func (c *Coordinator) MeasureContent(ctx context.Context) (geometry.Rect, bool) {
	return c.measure(ctx, c.contentHandle)
}

func (c *Coordinator) measure(ctx context.Context, h Handle) (geometry.Rect, bool) {
	if h == nil || c.provider == nil {
		return geometry.Rect{}, false
	}
	r, err := c.provider.Measure(ctx, h)
	if err != nil {
		return geometry.Rect{}, false
	}
	return r, true
}

// CommitAnchor replaces the stored anchor rect with a completed measurement.
// A slow measurement from a superseded cycle can still land here and
// overwrite with stale data; there is no generation tagging on measurements.
func (c *Coordinator) CommitAnchor(r geometry.Rect) {
	c.anchor = r
}

// CommitContent replaces the stored content rect.
func (c *Coordinator) CommitContent(r geometry.Rect) {
	c.content = r
}

// SetViewport records new viewport dimensions and invalidates any pending
// debounce timer by bumping the sequence. The returned sequence identifies
// the timer the caller should now schedule; when it fires, Current reports
// whether it is still the latest (last-write-wins, no queueing).
func (c *Coordinator) SetViewport(s geometry.Size) int {
	c.viewport = s
	c.seq++
	return c.seq
}

// Current reports whether seq identifies the most recent viewport change.
// Stale debounce timers check this and drop themselves.
func (c *Coordinator) Current(seq int) bool {
	return seq == c.seq
}

// Invalidate cancels any pending debounce timer on teardown.
func (c *Coordinator) Invalidate() {
	c.seq++
}

// Viewport returns the last recorded viewport dimensions.
func (c *Coordinator) Viewport() geometry.Size {
	return c.viewport
}

// Snapshot runs the recompute pipeline: resolve the requested placement
// against the most recently committed rects and viewport, then derive pixel
// offsets. Pure with respect to coordinator state; calling it twice yields
// the same frame.
func (c *Coordinator) Snapshot() Frame {
	resolved := layout.Resolve(c.requested, c.anchor, c.content, c.viewport, c.insets)
	return Frame{
		Requested: c.requested,
		Resolved:  resolved,
		Style:     layout.Compute(resolved, c.anchor, c.content, c.spacing),
		Anchor:    c.anchor,
		Content:   c.content,
		Viewport:  c.viewport,
		Spacing:   c.spacing,
	}
}
