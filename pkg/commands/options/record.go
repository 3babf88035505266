package options

import (
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/category"
	"tableflip.dev/nomilog/pkg/record"
)

// RecordOptions are the editable fields of a record.
type RecordOptions struct {
	On       OnOptions
	Category string
	Name     string
	Rating   int
	Store    string
	Memo     string
}

func AddRecordArgs(cmd *cobra.Command, o *RecordOptions) {
	AddOnArgs(cmd, &o.On, `Date of the drink, example: --on="2024-03-01" or --on="3/1". Defaults to today when adding.`)
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		base.Wrap80("Beverage category, one of: "+strings.Join(category.Keys(), ", ")+"."))
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"What you drank.")
	cmd.Flags().IntVarP(&o.Rating, "rating", "r", 0,
		"Rating from 1 to 5.")
	cmd.Flags().StringVar(&o.Store, "store", "",
		"Where you drank it.")
	cmd.Flags().StringVar(&o.Memo, "memo", "",
		"Tasting notes.")

	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return category.Keys(), cobra.ShellCompDirectiveNoFileComp
	})
}

// Input builds record input from the flags. A missing --on means today.
func (o *RecordOptions) Input() record.Input {
	date := o.On.DateString()
	if date == "" {
		date = o.On.now().Format(layoutDate)
	}
	return record.Input{
		Date:     date,
		Category: categoryKey(o.Category),
		Name:     o.Name,
		Rating:   o.Rating,
		Store:    o.Store,
		Memo:     o.Memo,
	}
}

// Overlay applies only the flags the user set on cmd to current.
func (o *RecordOptions) Overlay(cmd *cobra.Command, current record.Input) record.Input {
	changed := cmd.Flags().Changed
	if changed("on") {
		current.Date = o.On.DateString()
	}
	if changed("category") {
		current.Category = categoryKey(o.Category)
	}
	if changed("name") {
		current.Name = o.Name
	}
	if changed("rating") {
		current.Rating = o.Rating
	}
	if changed("store") {
		current.Store = o.Store
	}
	if changed("memo") {
		current.Memo = o.Memo
	}
	return current
}

// categoryKey resolves aliases and labels so "lager" or "日本酒" validate.
func categoryKey(s string) string {
	if c, err := category.Parse(s); err == nil {
		return c.Key()
	}
	return s
}
