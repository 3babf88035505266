// Package edit changes an existing record.
package edit

import (
	"context"

	"tableflip.dev/nomilog/pkg/ads"
	"tableflip.dev/nomilog/pkg/app"
	"tableflip.dev/nomilog/pkg/printers"
	"tableflip.dev/nomilog/pkg/record"
)

type Edit struct {
	ID string
	// Overlay receives the stored fields and returns the edited ones.
	Overlay func(current record.Input) record.Input

	Service *app.Service
	Ads     *ads.Interstitial
	Printer *printers.PrettyPrint
	JSON    func(v any) error
}

func (e *Edit) Do(ctx context.Context) error {
	id, err := e.Service.ResolveID(ctx, e.ID)
	if err != nil {
		return err
	}
	current, err := e.Service.Get(ctx, id)
	if err != nil {
		return err
	}
	in := current.Input()
	if e.Overlay != nil {
		in = e.Overlay(in)
	}
	r, err := e.Service.Update(ctx, id, in)
	if err != nil {
		return err
	}
	if e.JSON != nil {
		if err := e.JSON(r); err != nil {
			return err
		}
	} else {
		e.Printer.Record(r)
	}
	if e.Ads != nil {
		e.Ads.MaybeShow(ctx)
	}
	return nil
}
