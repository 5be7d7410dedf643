package tui

import "github.com/charmbracelet/lipgloss"

// ErrorFormat renders an error into the status line.
const ErrorFormat = "Error: %v"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	inputStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	trueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	falseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
