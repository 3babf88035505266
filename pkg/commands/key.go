package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the categories and their marker colors",
		Example: `
nomilog key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := key.Key{Printer: printer(cmd)}
			return k.Do(cmdContext(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
