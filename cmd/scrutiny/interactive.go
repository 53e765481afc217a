package main

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/report"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// reportModel is the Bubble Tea model for browsing one report.
type reportModel struct {
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newReportModel(r *metrics.Report) reportModel {
	// Reuse the text formatter for the scrollable content.
	var buf bytes.Buffer
	_ = report.WriteText(&buf, r)

	return reportModel{
		help:    help.New(),
		keys:    defaultKeyMap,
		content: buf.String(),
	}
}

func (m reportModel) Init() tea.Cmd {
	return nil
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m reportModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveReport launches the Bubble Tea TUI for browsing the
// report.
func runInteractiveReport(r *metrics.Report) error {
	model := newReportModel(r)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
