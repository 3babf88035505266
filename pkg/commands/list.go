package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/commands/options"
	"tableflip.dev/nomilog/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "timeline"},
		Short:   "List logged drinks, newest first",
		Example: `
nomilog list
nomilog list --category beer,sake --rating 5
nomilog list --query dassai --show-id
nomilog list --on 2024-03-01
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			criteria, err := fo.Criteria()
			if err != nil {
				return err
			}
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			pp := printer(cmd)
			pp.ShowID = io.ShowID
			s := list.List{
				Criteria: criteria,
				Service:  e.Service,
				Printer:  pp,
				JSON:     jsonOut(cmd, oo),
			}
			if !e.Service.PremiumStatus(cmdContext(cmd)) {
				s.Banner = e.Terminal.Banner()
			}
			err = s.Do(cmdContext(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
