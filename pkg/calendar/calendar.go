// Package calendar lays a month of records out as a Sunday-first grid.
package calendar

import (
	"time"

	"tableflip.dev/nomilog/pkg/category"
	"tableflip.dev/nomilog/pkg/record"
	"tableflip.dev/nomilog/pkg/timeutil"
)

// MaxMarkers is the most category markers a day cell shows.
const MaxMarkers = 3

// Month is a calendar month. Month uses time.Month, so January is 1.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf returns the month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// First is local midnight of the 1st.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

func (m Month) Prev() Month {
	return MonthOf(time.Date(m.Year, m.Month-1, 1, 0, 0, 0, 0, time.Local))
}

func (m Month) Next() Month {
	return MonthOf(time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, time.Local))
}

// Days is the number of days in the month.
func (m Month) Days() int {
	return timeutil.DaysIn(m.Year, m.Month)
}

func (m Month) String() string {
	return m.First().Format("January 2006")
}

// ParseMonth reads "2006-01".
func ParseMonth(s string) (Month, error) {
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return Month{}, err
	}
	return MonthOf(t), nil
}

// Cell is one slot of the grid. Blank cells pad the first week.
type Cell struct {
	Blank    bool                `json:"blank,omitempty"`
	Day      int                 `json:"day,omitempty"`
	Date     time.Time           `json:"date,omitzero"`
	Markers  []category.Category `json:"markers,omitempty"`
	Selected bool                `json:"selected,omitempty"`
	Today    bool                `json:"today,omitempty"`
}

// Colors returns the hex color for each marker.
func (c Cell) Colors() []string {
	out := make([]string, len(c.Markers))
	for i, m := range c.Markers {
		out[i] = m.Color()
	}
	return out
}

// Options decorate the grid. A nil Selected selects nothing; a zero Today
// marks nothing.
type Options struct {
	Selected *time.Time
	Today    time.Time
}

// Grid is a month of cells, blanks first.
type Grid struct {
	Month Month  `json:"month"`
	Cells []Cell `json:"cells"`
}

// BuildMonth lays records out over m. Records outside m are ignored; markers
// follow record order and repeat categories.
func BuildMonth(m Month, records []*record.Record, opts Options) Grid {
	offset := int(timeutil.FirstWeekday(m.Year, m.Month))
	days := m.Days()

	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		date := time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.Local)
		cell := Cell{Day: day, Date: date}
		for _, r := range records {
			if len(cell.Markers) == MaxMarkers {
				break
			}
			if r.Date.SameDay(date) {
				cell.Markers = append(cell.Markers, r.Category)
			}
		}
		if opts.Selected != nil && record.At(date).SameDay(*opts.Selected) {
			cell.Selected = true
		}
		if !opts.Today.IsZero() && record.At(date).SameDay(opts.Today) {
			cell.Today = true
		}
		cells = append(cells, cell)
	}
	return Grid{Month: m, Cells: cells}
}

// Weeks splits the cells into rows of seven. The last row may be short.
func (g Grid) Weeks() [][]Cell {
	var weeks [][]Cell
	for i := 0; i < len(g.Cells); i += 7 {
		end := min(i+7, len(g.Cells))
		weeks = append(weeks, g.Cells[i:end])
	}
	return weeks
}

// Day returns the cell for day number d.
func (g Grid) Day(d int) (Cell, bool) {
	for _, c := range g.Cells {
		if !c.Blank && c.Day == d {
			return c, true
		}
	}
	return Cell{}, false
}
