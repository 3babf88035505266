// Package purchase sells the premium upgrade.
package purchase

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/nomilog/pkg/logging"
)

// PremiumProductID identifies the one-time premium purchase.
const PremiumProductID = "alcohol_diary_premium"

var ErrUnknownProduct = errors.New("purchase: unknown product")

// Product is something the user can buy.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Entitlements records what the user owns.
type Entitlements interface {
	SetPremiumStatus(ctx context.Context, premium bool) error
}

// Biller completes a purchase with some payment backend.
type Biller interface {
	Charge(ctx context.Context, productID string) error
}

// Service lists products and grants premium after a successful charge.
type Service struct {
	Entitlements Entitlements
	Biller       Biller
	Log          logging.Logger
}

var catalog = []Product{{
	ID:          PremiumProductID,
	Title:       "nomilog premium",
	Description: "Removes interstitial and banner ads.",
	Price:       "¥370",
}}

// Products returns the catalog.
func (s *Service) Products(context.Context) []Product {
	return append([]Product(nil), catalog...)
}

// PurchasePremium charges for premium and grants it. Failure to charge is
// reported as false with the cause.
func (s *Service) PurchasePremium(ctx context.Context) (bool, error) {
	return s.Purchase(ctx, PremiumProductID)
}

func (s *Service) Purchase(ctx context.Context, productID string) (bool, error) {
	log := s.Log
	if log == nil {
		log = logging.Nop()
	}
	if productID != PremiumProductID {
		return false, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	biller := s.Biller
	if biller == nil {
		biller = LocalBiller{}
	}
	if err := biller.Charge(ctx, productID); err != nil {
		log.Warn(ctx, "purchase failed", "product", productID, "err", err)
		return false, fmt.Errorf("purchase: charge %s: %w", productID, err)
	}
	if err := s.Entitlements.SetPremiumStatus(ctx, true); err != nil {
		return false, err
	}
	log.Info(ctx, "purchase completed", "product", productID)
	return true, nil
}

// LocalBiller approves every charge. There is no store billing on a terminal.
type LocalBiller struct{}

func (LocalBiller) Charge(ctx context.Context, _ string) error {
	return ctx.Err()
}
