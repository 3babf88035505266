package ads

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/nomilog/pkg/store"
)

type fakeDisplay struct {
	initErr error
	inits   int
	shown   int
}

func (f *fakeDisplay) Initialize(context.Context) error {
	f.inits++
	return f.initErr
}

func (f *fakeDisplay) ShowInterstitial(context.Context) bool {
	f.shown++
	return true
}

func TestInterstitialEveryThird(t *testing.T) {
	ctx := context.Background()
	d := &fakeDisplay{}
	gate := &Interstitial{Display: d, Counter: &MemoryCounter{}}

	var got []bool
	for i := 0; i < 6; i++ {
		got = append(got, gate.MaybeShow(ctx))
	}
	want := []bool{false, false, true, false, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("save %d: expected %v, got %v", i+1, want[i], got[i])
		}
	}
	if d.inits != 1 {
		t.Fatalf("expected one initialization, got %d", d.inits)
	}
}

func TestInterstitialSkipsPremium(t *testing.T) {
	ctx := context.Background()
	d := &fakeDisplay{}
	counter := &MemoryCounter{}
	gate := &Interstitial{
		Display:   d,
		Counter:   counter,
		Frequency: 1,
		Premium:   func(context.Context) bool { return true },
	}
	for i := 0; i < 4; i++ {
		if gate.MaybeShow(ctx) {
			t.Fatal("premium users never see interstitials")
		}
	}
	if d.shown != 0 || counter.n != 0 {
		t.Fatalf("premium saves should not count: shown %d count %d", d.shown, counter.n)
	}
}

func TestInterstitialInitFailure(t *testing.T) {
	d := &fakeDisplay{initErr: errors.New("no network")}
	gate := &Interstitial{Display: d, Counter: &MemoryCounter{}, Frequency: 1}
	if gate.MaybeShow(context.Background()) {
		t.Fatal("expected no ad when initialization fails")
	}
}

func TestStoreCounterPersists(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	for want := 1; want <= 3; want++ {
		n, err := StoreCounter{Store: mem}.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n != want {
			t.Fatalf("expected %d, got %d", want, n)
		}
	}
	if err := (StoreCounter{Store: mem}).Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if n, _ := (StoreCounter{Store: mem}).Next(ctx); n != 1 {
		t.Fatalf("expected counter restart, got %d", n)
	}
}

func TestTerminalDisplay(t *testing.T) {
	var buf bytes.Buffer
	d := &Terminal{Out: &buf, Message: "hello"}
	if err := d.Initialize(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !d.ShowInterstitial(context.Background()) {
		t.Fatal("expected ad shown")
	}
	if !strings.Contains(buf.String(), "│ hello │") {
		t.Fatalf("unexpected frame %q", buf.String())
	}
	if err := (&Terminal{}).Initialize(context.Background()); err == nil {
		t.Fatal("expected error without output")
	}
}
