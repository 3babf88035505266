package app

import (
	"context"
	"encoding/json"
	"fmt"

	"tableflip.dev/nomilog/pkg/record"
)

// Settings returns the stored settings, or the defaults when they cannot be read.
func (s *Service) Settings(ctx context.Context) record.Settings {
	raw, ok, err := s.Store.Get(ctx, record.SettingsKey)
	if err != nil {
		s.log().Warn(ctx, "reading settings failed, using defaults", "err", err)
		return record.Settings{}
	}
	if !ok || raw == "" {
		return record.Settings{}
	}
	var settings record.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.log().Warn(ctx, "decoding settings failed, using defaults", "err", err)
		return record.Settings{}
	}
	return settings
}

// PremiumStatus reports whether premium has been purchased.
func (s *Service) PremiumStatus(ctx context.Context) bool {
	return s.Settings(ctx).IsPremium
}

// SetPremiumStatus records the premium flag. Turning it on stamps the purchase
// date; turning it off clears it.
func (s *Service) SetPremiumStatus(ctx context.Context, premium bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.Settings(ctx)
	settings.IsPremium = premium
	if premium {
		settings.PremiumPurchaseDate = record.Some(record.At(s.now()))
	} else {
		settings.PremiumPurchaseDate = record.None[record.Timestamp]()
	}

	b, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("app: encode settings: %w", err)
	}
	if err := s.Store.Set(ctx, record.SettingsKey, string(b)); err != nil {
		return fmt.Errorf("app: write settings: %w", err)
	}
	s.log().Info(ctx, "premium status changed", "premium", premium)
	return nil
}
