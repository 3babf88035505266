package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Style controls how Render draws a grid.
type Style struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Day      lipgloss.Style
	Marked   lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	// Marker is the glyph drawn once per marker, colored by category.
	Marker string
}

// DefaultStyle is the style the CLI and the browser use.
func DefaultStyle() Style {
	return Style{
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Day:      lipgloss.NewStyle().Faint(true),
		Marked:   lipgloss.NewStyle().Bold(true),
		Today:    lipgloss.NewStyle().Underline(true),
		Selected: lipgloss.NewStyle().Reverse(true),
		Marker:   "•",
	}
}

const cellWidth = 4

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Render draws the grid as a title, a weekday header and two lines per week:
// day numbers, then marker dots.
func Render(g Grid, s Style) string {
	pad := lipgloss.NewStyle().Width(cellWidth)

	var header []string
	for _, w := range weekdays {
		header = append(header, pad.Render(s.Header.Render(w)))
	}

	lines := []string{
		s.Title.Render(g.Month.String()),
		strings.TrimRight(strings.Join(header, ""), " "),
	}
	for _, week := range g.Weeks() {
		var days, dots []string
		for _, c := range week {
			if c.Blank {
				days = append(days, pad.Render(""))
				dots = append(dots, pad.Render(""))
				continue
			}
			days = append(days, pad.Render(renderDay(c, s)))
			dots = append(dots, pad.Render(renderMarkers(c, s)))
		}
		lines = append(lines,
			strings.TrimRight(strings.Join(days, ""), " "),
			strings.TrimRight(strings.Join(dots, ""), " "),
		)
	}
	return strings.Join(lines, "\n")
}

func renderDay(c Cell, s Style) string {
	style := s.Day
	if len(c.Markers) > 0 {
		style = s.Marked
	}
	if c.Today {
		style = style.Inherit(s.Today)
	}
	if c.Selected {
		style = style.Inherit(s.Selected)
	}
	return style.Render(fmt.Sprintf("%2d", c.Day))
}

func renderMarkers(c Cell, s Style) string {
	var b strings.Builder
	for _, m := range c.Markers {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color())).Render(s.Marker))
	}
	return b.String()
}
