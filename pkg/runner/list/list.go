// Package list prints the diary timeline.
package list

import (
	"context"

	"tableflip.dev/nomilog/pkg/app"
	"tableflip.dev/nomilog/pkg/printers"
	"tableflip.dev/nomilog/pkg/stats"
)

type List struct {
	Criteria stats.Criteria
	// Banner is printed under the listing, for free-tier ads. Empty prints nothing.
	Banner string

	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    func(v any) error
}

func (l *List) Do(ctx context.Context) error {
	records := stats.Filter(l.Service.Timeline(ctx), l.Criteria)
	if l.JSON != nil {
		return l.JSON(records)
	}
	title := "Diary"
	if l.Criteria.Active() {
		title = "Diary (filtered)"
	}
	l.Printer.TitleWithCount(title, len(records))
	l.Printer.Records(records...)
	if l.Banner != "" {
		l.Printer.Line(l.Banner)
	}
	return nil
}
