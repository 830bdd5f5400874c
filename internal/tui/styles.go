package tui

import (
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	highlight = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}
	danger    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFF7DB")).
			Background(highlight)

	tabStyle       = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(highlight).Bold(true).Padding(0, 1)

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle)

	footerStyle = lipgloss.NewStyle().Foreground(subtle)
	errorStyle  = lipgloss.NewStyle().Foreground(danger)
	helpStyle   = lipgloss.NewStyle().Foreground(subtle).Italic(true)
)

func gridStyles() btable.Styles {
	s := btable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(subtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFF7DB")).
		Background(highlight)
	return s
}
