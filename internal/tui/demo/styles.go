package demo

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	mutedColor   = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)
