// Package show prints one record in full.
package show

import (
	"context"

	"tableflip.dev/nomilog/pkg/app"
	"tableflip.dev/nomilog/pkg/printers"
)

type Show struct {
	ID      string
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    func(v any) error
}

func (s *Show) Do(ctx context.Context) error {
	id, err := s.Service.ResolveID(ctx, s.ID)
	if err != nil {
		return err
	}
	r, err := s.Service.Get(ctx, id)
	if err != nil {
		return err
	}
	if s.JSON != nil {
		return s.JSON(r)
	}
	s.Printer.Record(r)
	return nil
}
