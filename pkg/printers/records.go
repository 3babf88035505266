package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/nomilog/pkg/category"
	"tableflip.dev/nomilog/pkg/record"
)

// Stars renders a 1..5 rating.
func Stars(rating int) string {
	rating = max(0, min(rating, record.MaxRating))
	return strings.Repeat("★", rating) + strings.Repeat("☆", record.MaxRating-rating)
}

// Records prints records as a table, one per row.
func (pp *PrettyPrint) Records(records ...*record.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = fmt.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	for _, r := range records {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(short(r.ID)))
		}
		row = append(row,
			r.Date.DateString(),
			pp.Dot(r.Category.Color())+" "+r.Category.Label(),
			r.Name,
			Stars(r.Rating),
			faint.Sprint(r.Store.Or("")),
		)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Record prints one record in full.
func (pp *PrettyPrint) Record(r *record.Record) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("id"), r.ID)
	tbl.AddRow(bold.Sprint("date"), r.Date.DateString())
	tbl.AddRow(bold.Sprint("category"), fmt.Sprintf("%s %s (%s)", pp.Dot(r.Category.Color()), r.Category.Label(), r.Category.Key()))
	tbl.AddRow(bold.Sprint("name"), r.Name)
	tbl.AddRow(bold.Sprint("rating"), Stars(r.Rating))
	if s, ok := r.Store.Get(); ok {
		tbl.AddRow(bold.Sprint("store"), s)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)

	if memo, ok := r.Memo.Get(); ok {
		pp.NewLine()
		_, _ = fmt.Fprintln(pp.out(), wordwrap.String(memo, pp.width()))
	}
	pp.NewLine()
	_, _ = faint.Fprintf(pp.out(), "created %s  updated %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.UpdatedAt.Local().Format("2006-01-02 15:04"))
}

// Key prints the category legend.
func (pp *PrettyPrint) Key() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("  Key"), bold.Sprint("Label"), bold.Sprint("Meaning"), bold.Sprint("Aliases"))
	for _, c := range category.All() {
		info := c.Info()
		tbl.AddRow(pp.Dot(info.Color)+" "+info.Key, info.Label, info.Meaning, strings.Join(info.Aliases, ", "))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
