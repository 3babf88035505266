package record

import (
	"encoding/json"
	"fmt"
	"time"
)

const layoutDate = "2006-01-02"

// ParseTime accepts RFC 3339 timestamps (with or without fractional seconds)
// and bare dates. Bare dates are local midnight.
func ParseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutDate, v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("record: parse time %q: %w", v, err)
	}
	return t, nil
}

// Timestamp is a time that serializes as RFC 3339 text.
type Timestamp struct {
	time.Time
}

// At wraps t.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Day returns local midnight of the calendar date of t.
func Day(t time.Time) Timestamp {
	l := t.Local()
	return Timestamp{Time: time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)}
}

func (t Timestamp) SameDay(then time.Time) bool {
	if t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year() {
		return true
	}
	return false
}

func (t Timestamp) SameMonth(then time.Time) bool {
	if t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year() {
		return true
	}
	return false
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.Format(time.RFC3339Nano)
}

// DateString formats the local calendar date as 2006-01-02.
func (t Timestamp) DateString() string {
	return t.Local().Format(layoutDate)
}
