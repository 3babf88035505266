package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/commands/options"
	"tableflip.dev/nomilog/pkg/runner/premium"
)

func addPremium(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "premium",
		Short: "Show or change the premium upgrade",
		Example: `
nomilog premium
nomilog premium buy
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := premium.Status{
				Service:  e.Service,
				Purchase: e.Purchase,
				JSON:     jsonOut(cmd, oo),
			}
			err = s.Do(cmdContext(cmd))
			return oo.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, oo)

	buy := &cobra.Command{
		Use:   "buy",
		Short: "Buy premium and switch ads off",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := premium.Buy{Service: e.Service, Purchase: e.Purchase}
			return s.Do(cmdContext(cmd))
		},
	}

	reset := &cobra.Command{
		Use:    "reset",
		Short:  "Drop premium and restart the ad counter",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			s := premium.Reset{Service: e.Service, Counter: e.Counter}
			return s.Do(cmdContext(cmd))
		},
	}

	cmd.AddCommand(buy, reset)
	topLevel.AddCommand(cmd)
}
