package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Value    lipgloss.Style
	Warn     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// Heading renders a section title; used by non-interactive commands too.
func (t Theme) Heading(s string) string {
	return t.Title.Render(s)
}
