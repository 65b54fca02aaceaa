// Package popover drives the anchored-overlay engine from a Bubble Tea
// program. It owns the measurement triggers (open transitions, content
// relayout, debounced viewport changes), the background-press dismissal, and
// the composition of placed content onto an overlay canvas.
package popover

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-popover/internal/geometry"
	"github.com/vovakirdan/tui-popover/internal/layout"
	"github.com/vovakirdan/tui-popover/internal/measure"
	"github.com/vovakirdan/tui-popover/internal/overlay"
)

// RenderFunc produces the content block for the current frame. It is called
// synchronously during composition with the resolved layout facts, so custom
// renderers can react to where the popover actually landed.
type RenderFunc func(measure.Frame) string

// Options configures a popover. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// Open mounts the floating content and starts measurement.
	Open bool

	// Position is the requested placement token before overflow
	// correction, e.g. "bottom-right".
	Position string

	// HorizontalSpacing and VerticalSpacing are the gap between anchor and
	// content on the non-center axis.
	HorizontalSpacing int
	VerticalSpacing   int

	// Insets are viewport-edge exclusion margins.
	Insets geometry.Insets

	// Overlay renders a full-viewport background interceptor behind the
	// content; pressing it invokes OnClose.
	Overlay bool

	// OnClose is invoked when the background interceptor is pressed.
	OnClose func()

	// Debug tints the anchor, interceptor and content regions. No
	// functional effect.
	Debug bool

	// Render produces the content block; nil renders nothing.
	Render RenderFunc

	// Debounce is the delay before remeasuring after a viewport change.
	// Zero means measure.DefaultDebounce.
	Debounce time.Duration

	// Provider measures elements; required for any measurement to happen.
	Provider measure.Provider
}

// DefaultOptions returns the stock configuration: closed, bottom-right, no
// spacing, interceptor enabled.
func DefaultOptions() Options {
	return Options{
		Position: layout.Default.Token(),
		Overlay:  true,
	}
}

// Messages produced by the popover's asynchronous work. Hosts usually only
// need ContentLaidOutMsg, sent when the content's own layout settles and a
// remeasure is due.
type (
	// AnchorMeasuredMsg carries a completed anchor measurement. OK is
	// false when the measurement was skipped.
	AnchorMeasuredMsg struct {
		Rect geometry.Rect
		OK   bool
	}

	// ContentMeasuredMsg carries a completed content measurement.
	ContentMeasuredMsg struct {
		Rect geometry.Rect
		OK   bool
	}

	// ContentLaidOutMsg signals that the content finished (re)layout and
	// should be measured again. Content renders off-placement first, gets
	// measured, then repositioned; until then the style stays hidden.
	ContentLaidOutMsg struct{}

	// DismissedMsg is emitted when the background interceptor is pressed.
	// The host owns the open state and decides whether to actually close.
	DismissedMsg struct{}
)

// debounceMsg fires when a scheduled viewport-change delay elapses. Only the
// message carrying the latest sequence triggers a remeasure.
type debounceMsg struct {
	seq int
}

// Model is the Bubble Tea component for a single popover instance.
type Model struct {
	coord     *measure.Coordinator
	render    RenderFunc
	onClose   func()
	debug     bool
	intercept bool
}

// New creates a popover from the given options.
func New(opts Options) Model {
	c := measure.NewCoordinator(opts.Provider)
	c.SetPreference(layout.Parse(nonEmpty(opts.Position, layout.Default.Token())))
	c.SetSpacing(layout.Spacing{Horizontal: opts.HorizontalSpacing, Vertical: opts.VerticalSpacing})
	c.SetInsets(opts.Insets)
	c.SetDebounce(opts.Debounce)
	c.SetOpen(opts.Open)

	return Model{
		coord:     c,
		render:    opts.Render,
		onClose:   opts.OnClose,
		debug:     opts.Debug,
		intercept: opts.Overlay,
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Init implements tea.Model. Measurement starts on the open transition, not
// here.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetOpen opens or closes the popover. Opening triggers anchor and content
// measurement for whichever handles exist; closing orphans any pending
// debounce timer.
func (m Model) SetOpen(open bool) (Model, tea.Cmd) {
	wasOpen := m.coord.Open()
	m.coord.SetOpen(open)

	if open && !wasOpen {
		return m, tea.Batch(m.RemeasureAnchor(), m.RemeasureContent())
	}
	if !open && wasOpen {
		m.coord.Invalidate()
	}
	return m, nil
}

// Open reports whether the popover is currently open.
func (m Model) Open() bool {
	return m.coord.Open()
}

// SetAnchorHandle mounts the anchor's measurable handle.
func (m Model) SetAnchorHandle(h measure.Handle) Model {
	m.coord.SetAnchorHandle(h)
	return m
}

// SetContentHandle mounts the content's measurable handle.
func (m Model) SetContentHandle(h measure.Handle) Model {
	m.coord.SetContentHandle(h)
	return m
}

// SetPosition replaces the requested placement token.
func (m Model) SetPosition(token string) Model {
	m.coord.SetPreference(layout.Parse(token))
	return m
}

// SetSpacing replaces the anchor/content gap.
func (m Model) SetSpacing(horizontal, vertical int) Model {
	m.coord.SetSpacing(layout.Spacing{Horizontal: horizontal, Vertical: vertical})
	return m
}

// SetDebug toggles the debug tints.
func (m Model) SetDebug(on bool) Model {
	m.debug = on
	return m
}

// Debug reports whether debug tints are enabled.
func (m Model) Debug() bool {
	return m.debug
}

// SetInterceptor toggles the background interceptor.
func (m Model) SetInterceptor(on bool) Model {
	m.intercept = on
	return m
}

// Interceptor reports whether the background interceptor is enabled.
func (m Model) Interceptor() bool {
	return m.intercept
}

// RemeasureAnchor returns a command that measures the anchor. Nil when no
// anchor handle is mounted (the measurement is silently skipped).
func (m Model) RemeasureAnchor() tea.Cmd {
	if m.coord.AnchorHandle() == nil {
		return nil
	}
	coord := m.coord
	return func() tea.Msg {
		r, ok := coord.MeasureAnchor(context.Background())
		return AnchorMeasuredMsg{Rect: r, OK: ok}
	}
}

// RemeasureContent returns a command that measures the content. Nil when no
// content handle is mounted.
func (m Model) RemeasureContent() tea.Cmd {
	if m.coord.ContentHandle() == nil {
		return nil
	}
	coord := m.coord
	return func() tea.Msg {
		r, ok := coord.MeasureContent(context.Background())
		return ContentMeasuredMsg{Rect: r, OK: ok}
	}
}

// Update implements the popover's message handling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AnchorMeasuredMsg:
		if msg.OK {
			m.coord.CommitAnchor(msg.Rect)
		}
		return m, nil

	case ContentMeasuredMsg:
		if msg.OK {
			m.coord.CommitContent(msg.Rect)
		}
		return m, nil

	case ContentLaidOutMsg:
		if m.coord.Open() {
			return m, m.RemeasureContent()
		}
		return m, nil

	case tea.WindowSizeMsg:
		seq := m.coord.SetViewport(geometry.Size{Width: msg.Width, Height: msg.Height})
		return m, tea.Tick(m.coord.Debounce(), func(time.Time) tea.Msg {
			return debounceMsg{seq: seq}
		})

	case debounceMsg:
		// Only the latest scheduled timer survives; earlier ones land here
		// with a stale sequence and die quietly.
		if m.coord.Current(msg.seq) {
			return m, m.RemeasureAnchor()
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleMouse dismisses the popover when the background interceptor is
// pressed. Presses on the content itself are left for the host to route.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.coord.Open() || !m.intercept {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	frame := m.coord.Snapshot()
	content := geometry.NewRect(frame.Style.Left, frame.Style.Top, frame.Content.W, frame.Content.H)
	if frame.Style.Visible && content.Contains(msg.X, msg.Y) {
		return m, nil
	}

	if m.onClose != nil {
		m.onClose()
	}
	return m, func() tea.Msg { return DismissedMsg{} }
}

// Frame runs the recompute pipeline and returns the current resolved layout
// facts.
func (m Model) Frame() measure.Frame {
	return m.coord.Snapshot()
}

// Compose draws the popover onto the canvas: the optional interceptor wash,
// then the content block at its computed offset. Content with a hidden style
// is not drawn; it is measured through the provider, not the canvas.
func (m Model) Compose(c *overlay.Canvas) {
	if !m.coord.Open() {
		return
	}

	frame := m.coord.Snapshot()

	if m.intercept && m.debug {
		c.TintAll(overlay.TintBackdrop)
	}
	if m.debug {
		c.TintRect(frame.Anchor, overlay.TintAnchor)
	}

	if m.render == nil || !frame.Style.Visible {
		return
	}

	c.DrawBlock(frame.Style.Left, frame.Style.Top, m.render(frame))
	if m.debug {
		c.TintRect(geometry.NewRect(frame.Style.Left, frame.Style.Top, frame.Content.W, frame.Content.H), overlay.TintContent)
	}
}
