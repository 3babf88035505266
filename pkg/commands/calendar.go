package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/commands/options"
	"tableflip.dev/nomilog/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month with a colored dot per drink",
		Example: `
nomilog calendar
nomilog calendar --month 2024-02
nomilog cal --on 2/14
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			now := time.Now()
			month, selected, err := mo.Resolve(now)
			if err != nil {
				return err
			}
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := calendar.Calendar{
				Month:    month,
				Selected: selected,
				Today:    now,
				Service:  e.Service,
				Printer:  printer(cmd),
				JSON:     jsonOut(cmd, oo),
			}
			err = s.Do(cmdContext(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
