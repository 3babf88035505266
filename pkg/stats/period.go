package stats

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/nomilog/pkg/record"
	"tableflip.dev/nomilog/pkg/timeutil"
)

// PeriodKind names the shape of a Period.
type PeriodKind int

const (
	PeriodAll PeriodKind = iota
	PeriodWeek
	PeriodMonth
	PeriodWindow
)

// Period bounds records from below; there is no upper bound, so future-dated
// records are always included.
type Period struct {
	Kind   PeriodKind
	Window time.Duration
	label  string
}

var (
	All   = Period{Kind: PeriodAll, label: "all"}
	Week  = Period{Kind: PeriodWeek, label: "week"}
	Month = Period{Kind: PeriodMonth, label: "month"}
)

// Window is the period of the last d, measured from now.
func Window(d time.Duration) Period {
	return Period{Kind: PeriodWindow, Window: d, label: timeutil.FormatWindow(d)}
}

func (p Period) String() string {
	if p.label == "" {
		return "all"
	}
	return p.label
}

// Since returns the inclusive lower bound of p relative to now. The zero time
// means unbounded.
func (p Period) Since(now time.Time) time.Time {
	switch p.Kind {
	case PeriodWeek:
		return now.Add(-timeutil.Week)
	case PeriodMonth:
		return timeutil.MonthAgo(now)
	case PeriodWindow:
		return now.Add(-p.Window)
	default:
		return time.Time{}
	}
}

// ParsePeriod accepts "all", "week", "month" or a window such as "3d" or "2w".
// Empty input is All.
func ParsePeriod(s string) (Period, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "all":
		return All, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	default:
		d, _, err := timeutil.ParseWindow(v)
		if err != nil {
			return All, fmt.Errorf("stats: period %q: %w", s, err)
		}
		return Window(d), nil
	}
}

// Restrict keeps records dated at or after p's lower bound, in input order.
func Restrict(records []*record.Record, p Period, now time.Time) []*record.Record {
	since := p.Since(now)
	if since.IsZero() {
		return append([]*record.Record(nil), records...)
	}
	out := make([]*record.Record, 0, len(records))
	for _, r := range records {
		if !r.Date.Before(since) {
			out = append(out, r)
		}
	}
	return out
}
