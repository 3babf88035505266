package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/stats"
)

// PeriodOptions
type PeriodOptions struct {
	Period string
}

func AddPeriodArgs(cmd *cobra.Command, o *PeriodOptions) {
	cmd.Flags().StringVarP(&o.Period, "period", "p", "all",
		`Period to aggregate: all, week, month or a window such as "3d" or "2w".`)
	_ = cmd.RegisterFlagCompletionFunc("period", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"all", "week", "month"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *PeriodOptions) GetPeriod() (stats.Period, error) {
	return stats.ParsePeriod(o.Period)
}
