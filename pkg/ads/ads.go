// Package ads decides when the free tier sees an interstitial and draws it.
package ads

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"tableflip.dev/nomilog/pkg/logging"
	"tableflip.dev/nomilog/pkg/store"
)

// DefaultFrequency shows one interstitial every third save.
const DefaultFrequency = 3

// CounterKey is where StoreCounter keeps the save count.
const CounterKey = "ad_view_count"

// Display shows ads.
type Display interface {
	Initialize(ctx context.Context) error
	// ShowInterstitial reports whether an ad was actually shown.
	ShowInterstitial(ctx context.Context) bool
}

// Counter hands out the running count of successful saves.
type Counter interface {
	Next(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

// PremiumFunc reports whether ads are switched off.
type PremiumFunc func(ctx context.Context) bool

// Interstitial gates a Display behind a save counter.
type Interstitial struct {
	Display   Display
	Counter   Counter
	Premium   PremiumFunc
	Frequency int
	Log       logging.Logger

	once    sync.Once
	initErr error
}

// MaybeShow is called after each successful save. It bumps the counter and
// shows an ad on every Frequency-th save, unless premium.
func (i *Interstitial) MaybeShow(ctx context.Context) bool {
	log := i.Log
	if log == nil {
		log = logging.Nop()
	}
	if i.Premium != nil && i.Premium(ctx) {
		return false
	}
	i.once.Do(func() { i.initErr = i.Display.Initialize(ctx) })
	if i.initErr != nil {
		log.Warn(ctx, "ad display unavailable", "err", i.initErr)
		return false
	}

	n, err := i.Counter.Next(ctx)
	if err != nil {
		log.Warn(ctx, "ad counter", "err", err)
		return false
	}
	freq := i.Frequency
	if freq <= 0 {
		freq = DefaultFrequency
	}
	if n%freq != 0 {
		return false
	}
	shown := i.Display.ShowInterstitial(ctx)
	log.Info(ctx, "interstitial", "count", n, "shown", shown)
	return shown
}

// MemoryCounter counts within one process.
type MemoryCounter struct {
	mu sync.Mutex
	n  int
}

func (c *MemoryCounter) Next(context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.n, nil
}

func (c *MemoryCounter) Reset(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = 0
	return nil
}

// StoreCounter keeps the count in a store so it survives across CLI runs.
type StoreCounter struct {
	Store store.Store
}

func (c StoreCounter) Next(ctx context.Context) (int, error) {
	raw, ok, err := c.Store.Get(ctx, CounterKey)
	if err != nil {
		return 0, fmt.Errorf("ads: read counter: %w", err)
	}
	n := 0
	if ok {
		// A corrupt counter restarts from zero.
		n, _ = strconv.Atoi(raw)
	}
	n++
	if err := c.Store.Set(ctx, CounterKey, strconv.Itoa(n)); err != nil {
		return 0, fmt.Errorf("ads: write counter: %w", err)
	}
	return n, nil
}

func (c StoreCounter) Reset(ctx context.Context) error {
	return c.Store.Remove(ctx, CounterKey)
}
