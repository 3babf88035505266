package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/nomilog/pkg/calendar"
	"tableflip.dev/nomilog/pkg/record"
)

const width = len("11   12   13   14   15   16   17") // an example week

// Calendar prints the month grid with colored marker dots under each day,
// followed by the records of the selected day, if any.
func (pp *PrettyPrint) Calendar(g calendar.Grid, selected []*record.Record) {
	tf := color.New(color.FgWhite, color.Italic)
	faint := color.New(color.Faint, color.FgWhite)
	bold := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline)
	sel := color.New(color.ReverseVideo)

	m := g.Month.String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", max(mid, 0)), m)
	_, _ = faint.Fprintln(pp.out(), "Su   Mo   Tu   We   Th   Fr   Sa")

	for _, week := range g.Weeks() {
		var days, dots strings.Builder
		for _, c := range week {
			if c.Blank {
				days.WriteString("     ")
				dots.WriteString("     ")
				continue
			}
			p := faint
			if len(c.Markers) > 0 {
				p = bold
			}
			if c.Today {
				p = today
			}
			if c.Selected {
				p = sel
			}
			days.WriteString(p.Sprintf("%2d", c.Day))
			days.WriteString("   ")

			for _, hex := range c.Colors() {
				dots.WriteString(pp.Dot(hex))
			}
			dots.WriteString(strings.Repeat(" ", 5-len(c.Markers)))
		}
		_, _ = fmt.Fprintln(pp.out(), strings.TrimRight(days.String(), " "))
		_, _ = fmt.Fprintln(pp.out(), strings.TrimRight(dots.String(), " "))
	}
	pp.NewLine()

	if selected != nil {
		pp.Records(selected...)
	}
}
