package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel. The channel is closed once ctx is done or the watcher fails.
func (s *Disk) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				s.log().Warn(ctx, "closing store watcher failed", "err", err)
			}
		})
	}

	if err := watcher.Add(s.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer s.log().Debug(ctx, "store watch stopped", "path", s.basePath)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is busy; it re-reads everything on the next event anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log().Warn(ctx, "store watcher error", "err", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				key := s.keyForPath(evt.Name)
				if key == "" {
					continue
				}
				throttle.Enqueue(Event{Key: key}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces bursts of writes to the same key into one event.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush holds the lock while sending so Stop cannot return mid-flush; send
// must not block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	for key := range t.pending {
		send(Event{Key: key})
	}
	t.pending = make(map[string]struct{})
	t.timer = nil
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
