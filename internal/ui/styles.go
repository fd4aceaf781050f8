package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f7768e"))
)
