package store

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/nomilog/pkg/logging"
	"tableflip.dev/nomilog/pkg/record"
)

func TestDiskWatchEmitsKeyChanges(t *testing.T) {
	s, err := NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("open disk store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to start before writing.
	time.Sleep(50 * time.Millisecond)

	if err := s.Set(ctx, record.RecordsKey, "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key != record.RecordsKey {
				t.Fatalf("expected key %q, got %q", record.RecordsKey, evt.Key)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}

func TestDiskWatchClosesOnCancel(t *testing.T) {
	s, err := NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("open disk store: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestDiskWatchLogsThroughLogger(t *testing.T) {
	s, err := NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("open disk store: %v", err)
	}
	var buf bytes.Buffer
	if s.Log, err = logging.New(&buf, "debug", "text"); err != nil {
		t.Fatalf("logger: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if ok {
				continue
			}
			if !strings.Contains(buf.String(), "store watch stopped") {
				t.Fatalf("expected stop to be logged, got %q", buf.String())
			}
			return
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
