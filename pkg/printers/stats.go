package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/nomilog/pkg/stats"
)

const barWidth = 20

var (
	lowRating  = mustHex("#8B0000")
	highRating = mustHex("#FFD700")
	barTrack   = mustHex("#3A3A3A")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// bar draws pct (0..100) as a block bar in c.
func (pp *PrettyPrint) bar(pct float64, c colorful.Color) string {
	filled := int(pct/100*barWidth + 0.5)
	filled = max(0, min(filled, barWidth))
	on := pp.Profile.String(strings.Repeat("█", filled)).Foreground(pp.Profile.Color(c.Hex())).String()
	off := pp.Profile.String(strings.Repeat("░", barWidth-filled)).Foreground(pp.Profile.Color(barTrack.Hex())).String()
	return on + off
}

// Summary prints the stats view.
func (pp *PrettyPrint) Summary(label string, s stats.Summary) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	pp.TitleWithCount("Stats ("+label+")", s.Total)
	if s.Total == 0 {
		_, _ = faint.Fprintln(pp.out(), " nothing logged in this period")
		pp.NewLine()
		return
	}

	if s.MostFrequent != nil {
		_, _ = fmt.Fprintf(pp.out(), "%s %s %s\n", bold.Sprint("favourite"), pp.Dot(s.MostFrequent.Color()), s.MostFrequent.Label())
	}
	if r := s.HighestRated; r != nil {
		_, _ = fmt.Fprintf(pp.out(), "%s %s %s (%s)\n", bold.Sprint("best     "), Stars(r.Rating), r.Name, r.Date.DateString())
	}
	_, _ = fmt.Fprintf(pp.out(), "%s %.1f\n", bold.Sprint("average  "), s.Ratings.Average)
	pp.NewLine()

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, cs := range s.Categories {
		tbl.AddRow(
			pp.Dot(cs.Category.Color())+" "+cs.Category.Label(),
			pp.bar(cs.Percentage, mustHex(cs.Category.Color())),
			fmt.Sprintf("%d", cs.Count),
			fmt.Sprintf("%.1f%%", cs.Percentage),
		)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	tbl = uitable.New()
	tbl.Separator = "  "
	for _, rs := range s.Ratings.Distribution {
		// 1 is darkest red, 5 is gold.
		t := float64(rs.Rating-1) / 4
		tbl.AddRow(
			Stars(rs.Rating),
			pp.bar(rs.Percentage, lowRating.BlendLab(highRating, t)),
			fmt.Sprintf("%d", rs.Count),
			fmt.Sprintf("%.1f%%", rs.Percentage),
		)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
