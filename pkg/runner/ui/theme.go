package ui

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/nomilog/pkg/calendar"
)

// Theme collects the browser's Lip Gloss styles.
type Theme struct {
	Calendar calendar.Style
	// Frame wraps the calendar and the day list.
	Frame  lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// DefaultTheme is the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Calendar: calendar.DefaultStyle(),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}
