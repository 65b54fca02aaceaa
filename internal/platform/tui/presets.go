package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-popover/internal/storage"
)

// Preset browser layout constants
const (
	presetTableHeight = 12
	maxPresetRows     = 100
)

// PresetKeyMap defines the key bindings for the preset browser.
type PresetKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PresetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PresetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Delete, k.Quit},
	}
}

// DefaultPresetKeyMap returns default key bindings.
func DefaultPresetKeyMap() PresetKeyMap {
	return PresetKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PresetBrowserModel is the Bubble Tea model for browsing saved presets.
type PresetBrowserModel struct {
	store    *storage.Store
	presets  []storage.Preset
	table    table.Model
	help     help.Model
	keys     PresetKeyMap
	width    int
	selected string
	quitting bool
}

// NewPresetBrowserModel creates a preset browser backed by the given store.
func NewPresetBrowserModel(store *storage.Store) PresetBrowserModel {
	keys := DefaultPresetKeyMap()
	h := help.New()
	h.ShowAll = false

	m := PresetBrowserModel{
		store: store,
		keys:  keys,
		help:  h,
	}

	m.table = createPresetTable()
	m.loadPresets()

	return m
}

// createPresetTable creates the table with preset columns.
func createPresetTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 16},
		{Title: "Position", Width: 14},
		{Title: "Spacing", Width: 10},
		{Title: "Insets", Width: 14},
		{Title: "Overlay", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(presetTableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadPresets refreshes the table rows from the store.
func (m *PresetBrowserModel) loadPresets() {
	if m.store == nil {
		m.presets = nil
		m.table.SetRows(nil)
		return
	}

	presets, err := m.store.ListPresets()
	if err != nil {
		m.presets = nil
		m.table.SetRows(nil)
		return
	}
	if len(presets) > maxPresetRows {
		presets = presets[:maxPresetRows]
	}
	m.presets = presets

	rows := make([]table.Row, len(presets))
	for i, p := range presets {
		overlay := "off"
		if p.Overlay {
			overlay = "on"
		}
		rows[i] = table.Row{
			p.Name,
			p.Position,
			fmt.Sprintf("%d,%d", p.HSpacing, p.VSpacing),
			fmt.Sprintf("%d/%d/%d/%d", p.InsetTop, p.InsetRt, p.InsetBot, p.InsetLt),
			overlay,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the preset browser.
func (m PresetBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the preset browser.
func (m PresetBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.presets) {
				m.selected = m.presets[i].Name
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if i := m.table.Cursor(); i >= 0 && i < len(m.presets) && m.store != nil {
				//nolint:errcheck // Best-effort delete, list reload reflects reality
				m.store.DeletePreset(m.presets[i].Name)
				m.loadPresets()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the preset browser.
func (m PresetBrowserModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("SAVED PRESETS"))
	b.WriteString("\n\n")

	if len(m.presets) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No presets saved yet.\nUse 'popover presets save' to create one."))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the chosen preset name, empty if none.
func (m PresetBrowserModel) Selected() string {
	return m.selected
}

// RunPresetBrowser runs the preset browser screen.
// Returns the selected preset name, or empty if the user quit.
func RunPresetBrowser(store *storage.Store) (string, error) {
	model := NewPresetBrowserModel(store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(PresetBrowserModel)
	if !ok {
		return "", nil
	}

	return m.Selected(), nil
}
