package cli

import "github.com/charmbracelet/lipgloss"

type theme struct {
	Title lipgloss.Style
	OK    lipgloss.Style
	Fail  lipgloss.Style
	Warn  lipgloss.Style
	Faint lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title: lipgloss.NewStyle().Bold(true),
		OK:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Faint: lipgloss.NewStyle().Faint(true),
	}
}
