package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where records are stored.",
		Example: `
nomilog info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := info.Info{
				Config:  e.Config,
				Service: e.Service,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(cmdContext(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
