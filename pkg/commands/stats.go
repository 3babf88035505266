package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/commands/options"
	"tableflip.dev/nomilog/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	po := &options.PeriodOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Category shares, rating distribution and favourites",
		Example: `
nomilog stats
nomilog stats --period month
nomilog stats -p 2w --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			period, err := po.GetPeriod()
			if err != nil {
				return err
			}
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := stats.Stats{
				Period:  period,
				Service: e.Service,
				Printer: printer(cmd),
				JSON:    jsonOut(cmd, oo),
			}
			err = s.Do(cmdContext(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddPeriodArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
