package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/ads"
	"tableflip.dev/nomilog/pkg/app"
	"tableflip.dev/nomilog/pkg/commands/options"
	"tableflip.dev/nomilog/pkg/logging"
	"tableflip.dev/nomilog/pkg/printers"
	"tableflip.dev/nomilog/pkg/purchase"
	"tableflip.dev/nomilog/pkg/store"
)

// env is everything a command needs once config and store are open.
type env struct {
	Config   *store.FileConfig
	Store    store.Store
	Log      logging.Logger
	Service  *app.Service
	Counter  ads.Counter
	Terminal *ads.Terminal
	Ads      *ads.Interstitial
	Purchase *purchase.Service
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	s, err := store.Load(cmdContext(cmd), cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend(), err)
	}
	if d, ok := s.(*store.Disk); ok {
		d.Log = log
	}
	log.Debug(cmdContext(cmd), "store opened", "backend", cfg.Backend())

	svc := app.New(s, log)
	counter := ads.StoreCounter{Store: s}
	term := &ads.Terminal{Out: cmd.ErrOrStderr()}
	freq := cfg.AdFrequency
	if freq <= 0 {
		freq = ads.DefaultFrequency
	}

	return &env{
		Config:   cfg,
		Store:    s,
		Log:      log,
		Service:  svc,
		Counter:  counter,
		Terminal: term,
		Ads: &ads.Interstitial{
			Display:   term,
			Counter:   counter,
			Premium:   svc.PremiumStatus,
			Frequency: freq,
			Log:       log,
		},
		Purchase: &purchase.Service{
			Entitlements: svc,
			Biller:       purchase.LocalBiller{},
			Log:          log,
		},
	}, nil
}

func (e *env) Close() {
	if err := e.Store.Close(); err != nil {
		e.Log.Warn(context.Background(), "close store", "err", err)
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printer(cmd *cobra.Command) *printers.PrettyPrint {
	return printers.NewPretty(cmd.OutOrStdout())
}

// jsonOut returns the JSON sink for runners, nil unless --json.
func jsonOut(cmd *cobra.Command, o *options.OutputOptions) func(v any) error {
	o.Out = cmd.OutOrStdout()
	if !o.JSON {
		return nil
	}
	return o.PrintJSON
}
