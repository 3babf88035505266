package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "nomilog",
		Short: base.Wrap80("A drinking diary on the command line: log what you drank, browse it by month and see what you like."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addStats(topLevel)
	addCalendar(topLevel)
	addUI(topLevel)
	addPremium(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}
