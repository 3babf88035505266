package app

import (
	"context"
	"time"

	"tableflip.dev/nomilog/pkg/record"
	"tableflip.dev/nomilog/pkg/stats"
)

// ReportResult is the stats view over one period.
type ReportResult struct {
	Period  string           `json:"period"`
	Since   time.Time        `json:"since,omitzero"`
	Until   time.Time        `json:"until"`
	Records []*record.Record `json:"-"`
	Summary stats.Summary    `json:"summary"`
}

// Report restricts the timeline to period and aggregates it.
func (s *Service) Report(ctx context.Context, period stats.Period) ReportResult {
	now := s.now()
	records := stats.Restrict(s.Timeline(ctx), period, now)
	return ReportResult{
		Period:  period.String(),
		Since:   period.Since(now),
		Until:   now,
		Records: records,
		Summary: stats.Summarize(records),
	}
}

// Month returns the records dated in year/month, newest first.
func (s *Service) Month(ctx context.Context, year int, month time.Month) []*record.Record {
	return stats.InMonth(s.Timeline(ctx), year, month)
}

// MonthChronological returns the records in year/month oldest first, the
// order calendar markers are drawn in.
func (s *Service) MonthChronological(ctx context.Context, year int, month time.Month) []*record.Record {
	records := s.Month(ctx, year, month)
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records
}
