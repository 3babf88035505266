// Package calendar prints a month with a marker per drink.
package calendar

import (
	"context"
	"time"

	"tableflip.dev/nomilog/pkg/app"
	cal "tableflip.dev/nomilog/pkg/calendar"
	"tableflip.dev/nomilog/pkg/printers"
	"tableflip.dev/nomilog/pkg/stats"
)

type Calendar struct {
	Month    cal.Month
	Selected *time.Time
	Today    time.Time

	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    func(v any) error
}

func (c *Calendar) Do(ctx context.Context) error {
	records := c.Service.MonthChronological(ctx, c.Month.Year, c.Month.Month)
	grid := cal.BuildMonth(c.Month, records, cal.Options{Selected: c.Selected, Today: c.Today})
	if c.JSON != nil {
		return c.JSON(grid)
	}
	if c.Selected == nil {
		c.Printer.Calendar(grid, nil)
		return nil
	}
	c.Printer.Calendar(grid, stats.OnDay(records, *c.Selected))
	return nil
}
