// Package tui provides the terminal demo surface for the popover engine,
// including SSH server support via Wish.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-popover/internal/config"
	"github.com/vovakirdan/tui-popover/internal/geometry"
	"github.com/vovakirdan/tui-popover/internal/measure"
	"github.com/vovakirdan/tui-popover/internal/overlay"
	"github.com/vovakirdan/tui-popover/internal/popover"
	"github.com/vovakirdan/tui-popover/internal/scenarios"
)

// Region handle IDs used with the demo's provider.
const (
	regionAnchor  = "anchor"
	regionContent = "content"
)

// chrome is the number of rows below the canvas (status + help).
const chrome = 2

// positionCycle is the order the tab key walks through placement tokens.
var positionCycle = []string{
	"bottom-right",
	"bottom-center",
	"bottom-left",
	"top-right",
	"top-center",
	"top-left",
}

// DemoModel is the Bubble Tea model for the interactive popover demo. The
// user drags an anchor around the viewport and watches the engine flip the
// popover away from the edges.
type DemoModel struct {
	scenario scenarios.Scenario
	pop      popover.Model
	provider *RegionProvider
	canvas   *overlay.Canvas
	keys     DemoKeyMap
	help     help.Model

	anchor   geometry.Rect
	content  []string
	posIndex int
	width    int
	height   int
	quitting bool
}

// NewDemoModel creates a demo for the given scenario and configuration.
func NewDemoModel(s scenarios.Scenario, cfg config.Config, width, height int) DemoModel {
	provider := NewRegionProvider()

	content := s.Content()
	cw := 0
	for _, line := range content {
		if n := len([]rune(line)); n > cw {
			cw = n
		}
	}
	provider.Update(regionContent, geometry.NewRect(0, 0, cw, len(content)))

	viewport := geometry.Size{Width: width, Height: height - chrome}
	anchor := clampAnchor(s.Anchor(viewport), viewport)
	provider.Update(regionAnchor, anchor)

	// Config wins over the scenario's preferred position when it names one.
	position := cfg.Placement.Position
	if position == "" {
		position = s.Position()
	}

	opts := popover.DefaultOptions()
	opts.Position = position
	opts.HorizontalSpacing = cfg.Placement.Spacing.Horizontal
	opts.VerticalSpacing = cfg.Placement.Spacing.Vertical
	opts.Insets = cfg.Insets()
	opts.Overlay = cfg.Behavior.Overlay
	opts.Debug = cfg.Behavior.Debug
	opts.Debounce = cfg.Debounce()
	opts.Provider = provider
	opts.Render = func(measure.Frame) string {
		return strings.Join(content, "\n")
	}

	pop := popover.New(opts)
	pop = pop.SetAnchorHandle(regionAnchor).SetContentHandle(regionContent)

	h := help.New()
	h.ShowAll = false

	return DemoModel{
		scenario: s,
		pop:      pop,
		provider: provider,
		canvas:   overlay.NewCanvas(width, height-chrome),
		keys:     DefaultDemoKeyMap(),
		help:     h,
		anchor:   anchor,
		content:  content,
		posIndex: positionIndex(position),
		width:    width,
		height:   height,
	}
}

// positionIndex finds a token in the cycle, defaulting to the first entry.
func positionIndex(token string) int {
	for i, t := range positionCycle {
		if t == token {
			return i
		}
	}
	return 0
}

// clampAnchor keeps the anchor fully inside the viewport.
func clampAnchor(a geometry.Rect, viewport geometry.Size) geometry.Rect {
	a.X = geometry.Clamp(a.X, 0, geometry.Max(0, viewport.Width-a.W))
	a.Y = geometry.Clamp(a.Y, 0, geometry.Max(0, viewport.Height-a.H))
	return a
}

// Init initializes the demo.
func (m DemoModel) Init() tea.Cmd {
	return m.pop.Init()
}

// Update handles messages for the demo.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case popover.DismissedMsg:
		var cmd tea.Cmd
		m.pop, cmd = m.pop.SetOpen(false)
		return m, cmd
	}

	// Everything else (measurement results, debounce timers, mouse) is the
	// popover's business.
	var cmd tea.Cmd
	m.pop, cmd = m.pop.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m DemoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		var cmd tea.Cmd
		m.pop, cmd = m.pop.SetOpen(!m.pop.Open())
		return m, cmd

	case key.Matches(msg, m.keys.CyclePos):
		m.posIndex = (m.posIndex + 1) % len(positionCycle)
		m.pop = m.pop.SetPosition(positionCycle[m.posIndex])
		return m, nil

	case key.Matches(msg, m.keys.Debug):
		m.pop = m.pop.SetDebug(!m.pop.Debug())
		return m, nil

	case key.Matches(msg, m.keys.Overlay):
		m.pop = m.pop.SetInterceptor(!m.pop.Interceptor())
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.moveAnchor(0, -1)
	case key.Matches(msg, m.keys.Down):
		return m.moveAnchor(0, 1)
	case key.Matches(msg, m.keys.Left):
		return m.moveAnchor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		return m.moveAnchor(1, 0)
	}

	return m, nil
}

// moveAnchor shifts the anchor and remeasures if the popover is showing.
func (m DemoModel) moveAnchor(dx, dy int) (tea.Model, tea.Cmd) {
	viewport := geometry.Size{Width: m.width, Height: m.height - chrome}
	moved := m.anchor
	moved.X += dx
	moved.Y += dy
	m.anchor = clampAnchor(moved, viewport)
	m.provider.Update(regionAnchor, m.anchor)

	if m.pop.Open() {
		return m, m.pop.RemeasureAnchor()
	}
	return m, nil
}

// handleResize processes window resize events.
func (m DemoModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	viewport := geometry.Size{Width: msg.Width, Height: msg.Height - chrome}
	m.canvas.Resize(viewport.Width, viewport.Height)
	m.anchor = clampAnchor(m.anchor, viewport)
	m.provider.Update(regionAnchor, m.anchor)

	// The popover sees the canvas as its viewport, not the full terminal.
	var cmd tea.Cmd
	m.pop, cmd = m.pop.Update(tea.WindowSizeMsg{
		Width:  viewport.Width,
		Height: viewport.Height,
	})
	return m, cmd
}

// View renders the demo.
func (m DemoModel) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear()
	m.drawScene()
	m.pop.Compose(m.canvas)

	var sb strings.Builder
	sb.WriteString(RenderCanvas(m.canvas))
	sb.WriteRune('\n')
	sb.WriteString(m.statusLine())
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// drawScene draws the static parts: a dim frame and the anchor block.
func (m DemoModel) drawScene() {
	m.canvas.DrawBox(geometry.NewRect(0, 0, m.canvas.Width(), m.canvas.Height()))
	m.canvas.TintRect(geometry.NewRect(0, 0, m.canvas.Width(), 1), overlay.TintDim)

	title := " " + m.scenario.Title() + " "
	m.canvas.DrawText(2, 0, title)

	m.canvas.FillRect(m.anchor, '▒')
	m.canvas.TintRect(m.anchor, overlay.TintAnchor)
}

// statusLine summarizes the current placement state.
func (m DemoModel) statusLine() string {
	frame := m.pop.Frame()

	state := "closed"
	if m.pop.Open() {
		state = "open"
		if !frame.Style.Visible {
			state = "open (measuring)"
		}
	}

	flip := ""
	if frame.Resolved != frame.Requested {
		flip = fmt.Sprintf(" -> %s", frame.Resolved.Token())
	}

	line := fmt.Sprintf(" %s | pos %s%s | anchor (%d,%d) | offset {top:%d left:%d}",
		state, frame.Requested.Token(), flip,
		m.anchor.X, m.anchor.Y,
		frame.Style.Top, frame.Style.Left,
	)

	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(line)
}

// IsQuitting returns true if the user requested to quit.
func (m DemoModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a scenario.
func Run(scenarioID string, cfg config.Config) error {
	s, err := scenarios.Create(scenarioID)
	if err != nil {
		return err
	}

	// Size the initial model from the terminal; Bubble Tea sends a
	// WindowSizeMsg on startup anyway, this just avoids a visible reflow.
	width, height := 80, 24
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width, height = w, h
	}

	model := NewDemoModel(s, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Needed for the background interceptor
	)

	_, err = p.Run()
	return err
}
