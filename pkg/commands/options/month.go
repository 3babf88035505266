package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/calendar"
)

// MonthOptions pick a calendar month and optionally a day in it.
type MonthOptions struct {
	Month string
	On    OnOptions
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Month to show, example: --month="2024-02". Defaults to the --on month or this month.`)
	AddOnArgs(cmd, &o.On, `Select a day and list its records, example: --on="2024-02-14".`)
}

// Resolve returns the month to show and the selected day, if any.
func (o *MonthOptions) Resolve(now time.Time) (calendar.Month, *time.Time, error) {
	on, err := o.On.GetOn()
	if err != nil {
		return calendar.Month{}, nil, err
	}
	if o.Month != "" {
		m, err := calendar.ParseMonth(o.Month)
		return m, on, err
	}
	if on != nil {
		return calendar.MonthOf(*on), on, nil
	}
	return calendar.MonthOf(now), nil, nil
}
