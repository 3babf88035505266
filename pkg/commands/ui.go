package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse the diary month by month",
		Example: `
nomilog ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			return ui.Run(cmdContext(cmd), e.Service)
		},
	}

	topLevel.AddCommand(cmd)
}
