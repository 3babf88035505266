package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/commands/options"
	"tableflip.dev/nomilog/pkg/record"
	"tableflip.dev/nomilog/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	ro := &options.RecordOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a logged drink",
		Long:  "Change a logged drink. Only the flags given are changed; an empty --store or --memo clears it.",
		Example: `
nomilog edit 3f2a --rating 5
nomilog edit 3f2a --memo ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := edit.Edit{
				ID: args[0],
				Overlay: func(current record.Input) record.Input {
					return ro.Overlay(cmd, current)
				},
				Service: e.Service,
				Ads:     e.Ads,
				Printer: printer(cmd),
				JSON:    jsonOut(cmd, oo),
			}
			err = s.Do(cmdContext(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddRecordArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
