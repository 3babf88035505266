package options

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/category"
	"tableflip.dev/nomilog/pkg/record"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
}

func TestGetOn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-3-1", "2024-03-01"},
		{"2024-03-01", "2024-03-01"},
		{"3/1", "2024-03-01"},
		{"12/24", "2023-12-24"},
		{"today", "2024-03-15"},
		{"yesterday", "2024-03-14"},
	}
	for _, tc := range tests {
		o := OnOptions{OnString: tc.in, Now: fixedNow}
		got, err := o.GetOn()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if got.Format(layoutDate) != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.in, tc.want, got.Format(layoutDate))
		}
	}

	if on, err := (&OnOptions{}).GetOn(); on != nil || err != nil {
		t.Fatalf("expected nil for empty, got %v %v", on, err)
	}
	if _, err := (&OnOptions{OnString: "soon"}).GetOn(); err == nil {
		t.Fatal("expected error for bad date")
	}
}

func TestGetOnLeapDay(t *testing.T) {
	now := func() time.Time { return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.Local) }
	tests := []struct {
		in   string
		want string
	}{
		{"2/29", "2024-02-29"},
		{"3/1", "2026-03-01"},
		{"10/19", "2026-10-19"},
		{"10/20", "2025-10-20"},
	}
	for _, tc := range tests {
		o := OnOptions{OnString: tc.in, Now: now}
		if got := o.DateString(); got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestRecordInputDefaultsToToday(t *testing.T) {
	o := RecordOptions{Category: "lager", Name: "Asahi", Rating: 4}
	o.On.Now = fixedNow
	in := o.Input()
	if in.Date != "2024-03-15" {
		t.Fatalf("expected today, got %s", in.Date)
	}
	if in.Category != "beer" {
		t.Fatalf("expected alias resolved to beer, got %s", in.Category)
	}
}

func TestOverlayOnlyChangedFlags(t *testing.T) {
	o := &RecordOptions{}
	cmd := &cobra.Command{Use: "edit"}
	AddRecordArgs(cmd, o)
	if err := cmd.Flags().Parse([]string{"--rating", "2", "--store", ""}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	current := record.Input{Date: "2024-03-01", Category: "sake", Name: "Dassai", Rating: 5, Store: "Bar"}
	got := o.Overlay(cmd, current)
	want := record.Input{Date: "2024-03-01", Category: "sake", Name: "Dassai", Rating: 2, Store: ""}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestFilterCriteria(t *testing.T) {
	o := FilterOptions{Query: "asahi", Categories: []string{"beer", "日本酒"}, Ratings: []int{4}}
	c, err := o.Criteria()
	if err != nil {
		t.Fatalf("criteria: %v", err)
	}
	if len(c.Categories) != 2 || c.Categories[1] != category.Sake {
		t.Fatalf("unexpected categories %v", c.Categories)
	}
	if _, err := (&FilterOptions{Categories: []string{"mead"}}).Criteria(); !errors.Is(err, category.ErrUnknown) {
		t.Fatalf("expected unknown category error, got %v", err)
	}
	if _, err := (&FilterOptions{Ratings: []int{7}}).Criteria(); err == nil {
		t.Fatal("expected rating range error")
	}
}

func TestMonthResolve(t *testing.T) {
	m, sel, err := (&MonthOptions{}).Resolve(fixedNow())
	if err != nil || sel != nil || m.Month != time.March {
		t.Fatalf("unexpected %v %v %v", m, sel, err)
	}
	o := &MonthOptions{On: OnOptions{OnString: "2024-02-14"}}
	m, sel, err = o.Resolve(fixedNow())
	if err != nil || sel == nil || m.Month != time.February {
		t.Fatalf("unexpected %v %v %v", m, sel, err)
	}
}

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{JSON: true, Out: &buf}
	_, verr := record.Validate(record.Input{})
	if err := o.HandleError(verr); err != nil {
		t.Fatalf("expected error to be rendered, got %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if _, ok := out["fields"]; !ok {
		t.Fatalf("expected fields in %s", buf.String())
	}
}

func TestHandleErrorText(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{Out: &buf}
	_, verr := record.Validate(record.Input{Date: "2024-03-01", Category: "beer", Rating: 3})
	if err := o.HandleError(verr); err == nil {
		t.Fatal("expected error returned")
	}
	if !strings.Contains(buf.String(), "name:") {
		t.Fatalf("expected field listing, got %q", buf.String())
	}
}
