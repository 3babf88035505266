// Package add logs a new drink.
package add

import (
	"context"

	"tableflip.dev/nomilog/pkg/ads"
	"tableflip.dev/nomilog/pkg/app"
	"tableflip.dev/nomilog/pkg/printers"
	"tableflip.dev/nomilog/pkg/record"
)

type Add struct {
	Input record.Input

	Service *app.Service
	// Ads is optional; nil means no interstitials.
	Ads     *ads.Interstitial
	Printer *printers.PrettyPrint
	JSON    func(v any) error
}

func (n *Add) Do(ctx context.Context) error {
	r, err := n.Service.Create(ctx, n.Input)
	if err != nil {
		return err
	}
	if n.JSON != nil {
		if err := n.JSON(r); err != nil {
			return err
		}
	} else {
		n.Printer.Title(r.Date.DateString())
		n.Printer.Records(r)
	}
	if n.Ads != nil {
		n.Ads.MaybeShow(ctx)
	}
	return nil
}
