package tui

import "github.com/charmbracelet/bubbles/key"

// DemoKeyMap defines the key bindings for the demo screen.
type DemoKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	CyclePos key.Binding
	Debug    key.Binding
	Overlay  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k DemoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.CyclePos, k.Debug, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k DemoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.CyclePos, k.Debug, k.Overlay},
		{k.Help, k.Quit},
	}
}

// DefaultDemoKeyMap returns default key bindings.
func DefaultDemoKeyMap() DemoKeyMap {
	return DemoKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move anchor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move anchor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move anchor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move anchor right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle popover"),
		),
		CyclePos: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle position"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug tints"),
		),
		Overlay: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "toggle interceptor"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
