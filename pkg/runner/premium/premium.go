// Package premium reports, buys and resets the premium upgrade.
package premium

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/nomilog/pkg/ads"
	"tableflip.dev/nomilog/pkg/app"
	"tableflip.dev/nomilog/pkg/purchase"
)

// Status prints the premium flag and the product catalog.
type Status struct {
	Service  *app.Service
	Purchase *purchase.Service
	JSON     func(v any) error
}

func (s *Status) Do(ctx context.Context) error {
	settings := s.Service.Settings(ctx)
	if s.JSON != nil {
		return s.JSON(map[string]any{
			"settings": settings,
			"products": s.Purchase.Products(ctx),
		})
	}
	bold := color.New(color.Bold)
	if settings.IsPremium {
		since := ""
		if when, ok := settings.PremiumPurchaseDate.Get(); ok {
			since = " since " + when.Local().Format("2006-01-02")
		}
		_, _ = bold.Fprintf(color.Output, "premium%s\n", since)
		return nil
	}
	_, _ = bold.Fprintln(color.Output, "free tier")
	for _, p := range s.Purchase.Products(ctx) {
		_, _ = fmt.Fprintf(color.Output, "  %s  %s  %s\n", p.Title, p.Price, p.Description)
	}
	return nil
}

// Buy purchases premium.
type Buy struct {
	Service  *app.Service
	Purchase *purchase.Service
}

func (b *Buy) Do(ctx context.Context) error {
	if b.Service.PremiumStatus(ctx) {
		_, _ = fmt.Fprintln(color.Output, "already premium")
		return nil
	}
	ok, err := b.Purchase.PurchasePremium(ctx)
	if err != nil {
		return err
	}
	if ok {
		_, _ = color.New(color.FgGreen).Fprintln(color.Output, "thanks! ads are off")
	}
	return nil
}

// Reset drops premium and restarts the ad counter.
type Reset struct {
	Service *app.Service
	Counter ads.Counter
}

func (r *Reset) Do(ctx context.Context) error {
	if err := r.Service.SetPremiumStatus(ctx, false); err != nil {
		return err
	}
	if r.Counter != nil {
		if err := r.Counter.Reset(ctx); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(color.Output, "premium reset")
	return nil
}
