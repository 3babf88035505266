package commands

import (
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/commands/options"
	"tableflip.dev/nomilog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ro := &options.RecordOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Log a drink",
		Long:  base.Wrap80("Log a drink. The name may be given as arguments or with --name. Every third save on the free tier shows an ad."),
		Example: `
nomilog add --category beer --rating 4 Asahi Super Dry
nomilog add -c sake -r 5 -n Dassai --store "Bar Kura" --on 3/1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				ro.Name = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := add.Add{
				Input:   ro.Input(),
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
