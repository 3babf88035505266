package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/commands/options"
	"tableflip.dev/nomilog/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one logged drink in full",
		Example: `
nomilog show 3f2a
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := show.Show{
				ID:      args[0],
				Service: e.Service,
				Printer: printer(cmd),
				JSON:    jsonOut(cmd, oo),
			}
			err = s.Do(cmdContext(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
