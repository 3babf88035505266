package record

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/nomilog/pkg/category"
)

func validInput() Input {
	return Input{
		Date:     "2024-03-01",
		Category: "beer",
		Name:     "Lager",
		Rating:   4,
	}
}

func TestValidateAccepts(t *testing.T) {
	in := validInput()
	in.Name = "  Lager  "
	in.Store = "  Corner Pub "
	f, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "Lager" {
		t.Fatalf("expected trimmed name, got %q", f.Name)
	}
	if f.Category != category.Beer || f.Rating != 4 {
		t.Fatalf("unexpected fields %+v", f)
	}
	if got, ok := f.Store.Get(); !ok || got != "Corner Pub" {
		t.Fatalf("expected trimmed store, got %q (%v)", got, ok)
	}
	if f.Memo.IsSet() {
		t.Fatalf("expected memo to be absent")
	}
	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	if !f.Date.Equal(want) {
		t.Fatalf("expected %v, got %v", want, f.Date.Time)
	}
}

func TestValidateBlankOptionalIsAbsent(t *testing.T) {
	in := validInput()
	in.Store = "   "
	in.Memo = "\t\n"
	f, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Store.IsSet() || f.Memo.IsSet() {
		t.Fatalf("expected blank store and memo to normalize to absent")
	}
}

func TestValidateSingleViolation(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Input)
	}{
		{"date", func(in *Input) { in.Date = "" }},
		{"date", func(in *Input) { in.Date = "2023-02-30" }},
		{"date", func(in *Input) { in.Date = "yesterday" }},
		{"category", func(in *Input) { in.Category = "mead" }},
		{"category", func(in *Input) { in.Category = "" }},
		{"name", func(in *Input) { in.Name = "   " }},
		{"name", func(in *Input) { in.Name = strings.Repeat("a", 101) }},
		{"rating", func(in *Input) { in.Rating = 0 }},
		{"rating", func(in *Input) { in.Rating = 6 }},
		{"store", func(in *Input) { in.Store = strings.Repeat("s", 101) }},
		{"memo", func(in *Input) { in.Memo = strings.Repeat("m", 501) }},
	}
	for _, tc := range tests {
		in := validInput()
		tc.mutate(&in)
		_, err := Validate(in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.field, err)
		}
		if len(verr.Fields) != 1 || verr.Fields[0].Field != tc.field {
			t.Fatalf("%s: expected exactly one error for the field, got %+v", tc.field, verr.Fields)
		}
		if verr.Fields[0].Message == "" {
			t.Fatalf("%s: expected a message", tc.field)
		}
	}
}

func TestValidateCollectsAll(t *testing.T) {
	_, err := Validate(Input{Rating: 9, Memo: strings.Repeat("m", 501)})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"date", "category", "name", "rating", "memo"} {
		if !verr.Has(field) {
			t.Fatalf("expected %s to be reported, got %+v", field, verr.Fields)
		}
	}
	if verr.Has("store") {
		t.Fatalf("store was valid and should not be reported")
	}
}

func TestValidateCountsCharactersNotBytes(t *testing.T) {
	in := validInput()
	in.Name = strings.Repeat("酒", 100)
	if _, err := Validate(in); err != nil {
		t.Fatalf("100 multibyte characters should pass: %v", err)
	}
}

func TestRecordJSONRoundTrip(t *testing.T) {
	created := time.Date(2024, time.March, 1, 20, 15, 0, 0, time.UTC)
	r := &Record{
		ID:        "abc",
		Date:      Day(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)),
		Category:  category.Sake,
		Name:      "Dassai",
		Rating:    5,
		Memo:      Some("cold"),
		CreatedAt: At(created),
		UpdatedAt: At(created),
	}
	b, err := json.Marshal([]*Record{r})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), `"store"`) {
		t.Fatalf("absent store should be omitted: %s", b)
	}
	if !strings.Contains(string(b), `"category":"sake"`) {
		t.Fatalf("expected category key in %s", b)
	}

	var back []*Record
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := back[0]
	if got.ID != r.ID || got.Name != r.Name || got.Category != r.Category || got.Rating != r.Rating {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.Date.Equal(r.Date.Time) || !got.CreatedAt.Equal(created) {
		t.Fatalf("timestamps not reparsed: %v %v", got.Date, got.CreatedAt)
	}
	if memo, ok := got.Memo.Get(); !ok || memo != "cold" {
		t.Fatalf("memo lost: %q", memo)
	}
	if got.Store.IsSet() {
		t.Fatalf("store should stay absent")
	}
}

func TestSettingsDecodeLegacy(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{"isPremium":true,"premiumPurchaseDate":"2024-05-01T10:00:00.000Z"}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	when, ok := s.PremiumPurchaseDate.Get()
	if !s.IsPremium || !ok {
		t.Fatalf("unexpected settings %+v", s)
	}
	if when.UTC().Hour() != 10 {
		t.Fatalf("unexpected purchase time %v", when)
	}
}

func TestTimestampSameDay(t *testing.T) {
	ts := At(time.Date(2024, time.March, 1, 23, 0, 0, 0, time.Local))
	if !ts.SameDay(time.Date(2024, time.March, 1, 1, 0, 0, 0, time.Local)) {
		t.Fatalf("expected same day")
	}
	if ts.SameDay(time.Date(2024, time.March, 2, 1, 0, 0, 0, time.Local)) {
		t.Fatalf("expected different day")
	}
	if !ts.SameMonth(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected same month")
	}
}

func TestInputRoundTrip(t *testing.T) {
	f, err := Validate(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := &Record{ID: "x"}
	r.Apply(f)
	if got := r.Input(); got != validInput() {
		t.Fatalf("expected %+v, got %+v", validInput(), got)
	}
}
