// Package stats prints aggregates over a period.
package stats

import (
	"context"

	"tableflip.dev/nomilog/pkg/app"
	"tableflip.dev/nomilog/pkg/printers"
	agg "tableflip.dev/nomilog/pkg/stats"
)

type Stats struct {
	Period  agg.Period
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    func(v any) error
}

func (s *Stats) Do(ctx context.Context) error {
	rep := s.Service.Report(ctx, s.Period)
	if s.JSON != nil {
		return s.JSON(rep)
	}
	s.Printer.Summary(rep.Period, rep.Summary)
	return nil
}
