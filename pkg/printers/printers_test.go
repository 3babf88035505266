package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"

	"tableflip.dev/nomilog/pkg/calendar"
	"tableflip.dev/nomilog/pkg/category"
	"tableflip.dev/nomilog/pkg/record"
	"tableflip.dev/nomilog/pkg/stats"
)

func sample() []*record.Record {
	day := record.Day(time.Date(2024, time.February, 14, 0, 0, 0, 0, time.Local))
	return []*record.Record{
		{ID: "0123456789abcdef", Date: day, Category: category.Beer, Name: "Lager", Rating: 4, Store: record.Some("Corner Pub")},
		{ID: "fedcba9876543210", Date: day, Category: category.Sake, Name: "Dassai", Rating: 5, Memo: record.Some("cold and clean")},
	}
}

func TestNewPrettyPlainForBuffers(t *testing.T) {
	var buf bytes.Buffer
	pp := NewPretty(&buf)
	if pp.Profile != termenv.Ascii {
		t.Fatalf("expected ascii profile for a buffer, got %v", pp.Profile)
	}
}

func TestRecords(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowID: true, Profile: termenv.Ascii}
	pp.Records(sample()...)
	out := buf.String()
	for _, want := range []string{"01234567", "Lager", "Dassai", "★★★★☆", "Corner Pub", "2024-02-14"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0123456789abcdef") {
		t.Fatalf("ids should be shortened:\n%s", out)
	}
}

func TestRecordsEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Profile: termenv.Ascii}
	pp.Records()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestRecordWrapsMemo(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Profile: termenv.Ascii, Width: 10}
	r := sample()[1]
	r.Memo = record.Some("cold and clean with a long finish")
	pp.Record(r)
	if !strings.Contains(buf.String(), "cold and\nclean") {
		t.Fatalf("expected wrapped memo:\n%s", buf.String())
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Profile: termenv.Ascii}
	pp.Summary("all", stats.Summarize(sample()))
	out := buf.String()
	for _, want := range []string{"Stats (all)", "50.0%", "Dassai", "4.5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCalendar(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Profile: termenv.Ascii}
	g := calendar.BuildMonth(calendar.Month{Year: 2024, Month: time.February}, sample(), calendar.Options{})
	pp.Calendar(g, nil)
	out := buf.String()
	if !strings.Contains(out, "February 2024") || !strings.Contains(out, "29") {
		t.Fatalf("unexpected calendar:\n%s", out)
	}
	if strings.Count(out, "●") != 2 {
		t.Fatalf("expected two markers:\n%s", out)
	}
}

func TestStars(t *testing.T) {
	if got := Stars(3); got != "★★★☆☆" {
		t.Fatalf("unexpected stars %q", got)
	}
	if got := Stars(9); got != "★★★★★" {
		t.Fatalf("unexpected clamp %q", got)
	}
}
