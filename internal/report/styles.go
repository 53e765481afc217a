package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a
// TTY.
type Styles struct {
	// Header is used for section headers.
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// Label styles metric names; Value styles metric values.
	Label lipgloss.Style
	Value lipgloss.Style

	// Good, Medium and Bad color quality signals by severity.
	Good   lipgloss.Style
	Medium lipgloss.Style
	Bad    lipgloss.Style

	// TableHeader styles the header row of tables; Border styles
	// table borders.
	TableHeader lipgloss.Style
	Border      lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal
// reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Label: lipgloss.NewStyle().Width(34),
		Value: lipgloss.NewStyle().Bold(true),

		Good:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		Medium: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// ScoreStyle returns the style matching a composite score: green at
// 80 and above, orange at 60, red below.
func (s Styles) ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return s.Good
	case score >= 60:
		return s.Medium
	default:
		return s.Bad
	}
}
