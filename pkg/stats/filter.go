// Package stats filters diary records and aggregates them into the numbers the
// list, stats and calendar views show. Everything here is pure.
package stats

import (
	"slices"
	"time"

	"tableflip.dev/nomilog/pkg/category"
	"tableflip.dev/nomilog/pkg/record"
)

// Criteria selects records. Zero-valued clauses match everything.
type Criteria struct {
	Query      string
	Categories []category.Category
	Ratings    []int
	On         *time.Time
}

// Active reports whether any clause is set.
func (c Criteria) Active() bool {
	return c.Query != "" || len(c.Categories) > 0 || len(c.Ratings) > 0 || c.On != nil
}

// Match reports whether r satisfies every active clause.
func (c Criteria) Match(r *record.Record) bool {
	if r == nil {
		return false
	}
	if c.Query != "" && !r.Matches(c.Query) {
		return false
	}
	if len(c.Categories) > 0 && !slices.Contains(c.Categories, r.Category) {
		return false
	}
	if len(c.Ratings) > 0 && !slices.Contains(c.Ratings, r.Rating) {
		return false
	}
	if c.On != nil && !r.Date.SameDay(*c.On) {
		return false
	}
	return true
}

// Filter returns the records matching c, in input order.
func Filter(records []*record.Record, c Criteria) []*record.Record {
	out := make([]*record.Record, 0, len(records))
	for _, r := range records {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// OnDay returns the records dated on the calendar day of t.
func OnDay(records []*record.Record, t time.Time) []*record.Record {
	return Filter(records, Criteria{On: &t})
}

// InMonth returns the records dated in year/month.
func InMonth(records []*record.Record, year int, month time.Month) []*record.Record {
	ref := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	out := make([]*record.Record, 0, len(records))
	for _, r := range records {
		if r.Date.SameMonth(ref) {
			out = append(out, r)
		}
	}
	return out
}
