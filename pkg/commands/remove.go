package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete logged drinks",
		Example: `
nomilog rm 3f2a 9c01
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := remove.Remove{
				IDs:     args,
				Service: e.Service,
			}
			return s.Do(cmdContext(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
