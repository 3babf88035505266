package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/category"
	"tableflip.dev/nomilog/pkg/stats"
)

// FilterOptions narrow a record listing.
type FilterOptions struct {
	Query      string
	Categories []string
	Ratings    []int
	On         OnOptions
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Only records whose name contains this text.")
	cmd.Flags().StringSliceVarP(&o.Categories, "category", "c", nil,
		"Only these categories. Repeat or comma separate.")
	cmd.Flags().IntSliceVarP(&o.Ratings, "rating", "r", nil,
		"Only these ratings. Repeat or comma separate.")
	AddOnArgs(cmd, &o.On, `Only records on this date, example: --on="2024-03-01".`)

	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return category.Keys(), cobra.ShellCompDirectiveNoFileComp
	})
}

// Criteria converts the flags.
func (o *FilterOptions) Criteria() (stats.Criteria, error) {
	c := stats.Criteria{Query: o.Query, Ratings: o.Ratings}
	for _, raw := range o.Categories {
		cat, err := category.Parse(raw)
		if err != nil {
			return c, err
		}
		c.Categories = append(c.Categories, cat)
	}
	for _, r := range o.Ratings {
		if r < 1 || r > 5 {
			return c, fmt.Errorf("rating %d out of range 1-5", r)
		}
	}
	on, err := o.On.GetOn()
	if err != nil {
		return c, err
	}
	c.On = on
	return c, nil
}
