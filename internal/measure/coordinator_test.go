package measure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-popover/internal/geometry"
	"github.com/vovakirdan/tui-popover/internal/layout"
)

// fakeProvider measures handles out of a fixed map.
type fakeProvider struct {
	rects map[string]geometry.Rect
	calls int
}

func (p *fakeProvider) Measure(_ context.Context, h Handle) (geometry.Rect, error) {
	p.calls++
	id, ok := h.(string)
	if !ok {
		return geometry.Rect{}, errors.New("bad handle")
	}
	r, ok := p.rects[id]
	if !ok {
		return geometry.Rect{}, errors.New("unknown handle")
	}
	return r, nil
}

func TestMeasureSkipsWithoutHandle(t *testing.T) {
	p := &fakeProvider{rects: map[string]geometry.Rect{}}
	c := NewCoordinator(p)

	if _, ok := c.MeasureAnchor(context.Background()); ok {
		t.Error("measurement without a handle should be skipped")
	}
	if p.calls != 0 {
		t.Errorf("provider should not be queried without a handle, got %d calls", p.calls)
	}
}

func TestMeasureSkipsOnProviderError(t *testing.T) {
	p := &fakeProvider{rects: map[string]geometry.Rect{}}
	c := NewCoordinator(p)
	c.SetAnchorHandle("gone")

	if _, ok := c.MeasureAnchor(context.Background()); ok {
		t.Error("provider error should be a silent skip")
	}
}

func TestMeasureAndCommit(t *testing.T) {
	p := &fakeProvider{rects: map[string]geometry.Rect{
		"anchor":  geometry.NewRect(10, 20, 100, 50),
		"content": geometry.NewRect(0, 0, 80, 40),
	}}
	c := NewCoordinator(p)
	c.SetAnchorHandle("anchor")
	c.SetContentHandle("content")
	c.SetViewport(geometry.Size{Width: 200, Height: 200})

	r, ok := c.MeasureAnchor(context.Background())
	if !ok {
		t.Fatal("anchor measurement failed")
	}
	c.CommitAnchor(r)

	r, ok = c.MeasureContent(context.Background())
	if !ok {
		t.Fatal("content measurement failed")
	}
	c.CommitContent(r)

	frame := c.Snapshot()
	if frame.Anchor != geometry.NewRect(10, 20, 100, 50) {
		t.Errorf("anchor not committed: %+v", frame.Anchor)
	}
	if frame.Content != geometry.NewRect(0, 0, 80, 40) {
		t.Errorf("content not committed: %+v", frame.Content)
	}
}

func TestSnapshotResolvesFromLatestState(t *testing.T) {
	c := NewCoordinator(nil)
	c.SetPreference(layout.Preference{Vertical: layout.Bottom, Horizontal: layout.Left})
	c.SetSpacing(layout.Spacing{Horizontal: 5, Vertical: 5})
	c.SetViewport(geometry.Size{Width: 200, Height: 200})
	c.CommitAnchor(geometry.NewRect(10, 20, 100, 50))
	c.CommitContent(geometry.NewRect(0, 0, 80, 40))

	frame := c.Snapshot()
	if frame.Resolved != frame.Requested {
		t.Errorf("placement fits, expected no flip: %v", frame.Resolved)
	}
	if frame.Style.Top != 75 || frame.Style.Left != 15 {
		t.Errorf("style = {top:%d left:%d}, expected {top:75 left:15}", frame.Style.Top, frame.Style.Left)
	}
	if !frame.Style.Visible {
		t.Error("measured placement should be visible")
	}

	// Shrink the viewport: the same snapshot call must now flip, derived
	// from the latest committed state, not from the previous resolution.
	c.SetViewport(geometry.Size{Width: 200, Height: 100})
	frame = c.Snapshot()
	if frame.Resolved.Vertical != layout.Top {
		t.Errorf("expected vertical flip after viewport shrink, got %v", frame.Resolved)
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	c := NewCoordinator(nil)
	c.SetViewport(geometry.Size{Width: 80, Height: 24})
	c.CommitAnchor(geometry.NewRect(70, 20, 8, 1))
	c.CommitContent(geometry.NewRect(0, 0, 20, 6))

	first := c.Snapshot()
	second := c.Snapshot()
	if first != second {
		t.Errorf("Snapshot not idempotent: %+v then %+v", first, second)
	}
}

func TestSnapshotBeforeMeasurementIsHidden(t *testing.T) {
	c := NewCoordinator(nil)
	c.SetViewport(geometry.Size{Width: 80, Height: 24})

	frame := c.Snapshot()
	if frame.Style.Visible {
		t.Error("zero rects must produce a hidden style")
	}
}

func TestDebounceLastWriteWins(t *testing.T) {
	c := NewCoordinator(nil)

	first := c.SetViewport(geometry.Size{Width: 80, Height: 24})
	second := c.SetViewport(geometry.Size{Width: 100, Height: 30})

	if c.Current(first) {
		t.Error("superseded debounce sequence should be stale")
	}
	if !c.Current(second) {
		t.Error("latest debounce sequence should be current")
	}
	if c.Viewport() != (geometry.Size{Width: 100, Height: 30}) {
		t.Errorf("viewport = %+v, expected latest", c.Viewport())
	}
}

func TestInvalidateCancelsPendingDebounce(t *testing.T) {
	c := NewCoordinator(nil)
	seq := c.SetViewport(geometry.Size{Width: 80, Height: 24})
	c.Invalidate()

	if c.Current(seq) {
		t.Error("Invalidate should orphan pending debounce timers")
	}
}

func TestSetDebounce(t *testing.T) {
	c := NewCoordinator(nil)
	if c.Debounce() != DefaultDebounce {
		t.Errorf("default debounce = %v, expected %v", c.Debounce(), DefaultDebounce)
	}

	c.SetDebounce(250 * time.Millisecond)
	if c.Debounce() != 250*time.Millisecond {
		t.Errorf("debounce = %v, expected 250ms", c.Debounce())
	}

	// Non-positive values are ignored rather than disabling the debounce.
	c.SetDebounce(0)
	if c.Debounce() != 250*time.Millisecond {
		t.Errorf("zero debounce should be ignored, got %v", c.Debounce())
	}
}

func TestStaleRectsSurviveClose(t *testing.T) {
	c := NewCoordinator(nil)
	c.SetViewport(geometry.Size{Width: 80, Height: 24})
	c.CommitAnchor(geometry.NewRect(5, 5, 10, 1))
	c.SetOpen(true)
	c.SetOpen(false)

	if c.Snapshot().Anchor != geometry.NewRect(5, 5, 10, 1) {
		t.Error("rects should retain their last value across close")
	}
}
