package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
	layoutDate     = "2006-01-02"
)

// OnOptions
type OnOptions struct {
	OnString string
	// Now defaults to time.Now; short dates resolve against it.
	Now func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions, usage string) {
	cmd.Flags().StringVar(&o.OnString, "on", "", usage)
}

// GetOn parses --on. "2024-3-1" is taken literally; "3/1" means the most
// recent March 1st, since a diary looks back. Empty means nil.
func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	switch o.OnString {
	case "today":
		t := o.now()
		return &t, nil
	case "yesterday":
		t := o.now().AddDate(0, 0, -1)
		return &t, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected 2006-01-02 or 1/2", o.OnString)
		}
		if t, err = mostRecent(t.Month(), t.Day(), o.now()); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// mostRecent finds the latest month/day on or before now. Feb 29 walks back
// to the last leap year.
func mostRecent(m time.Month, d int, now time.Time) (time.Time, error) {
	for year := now.Year(); year > now.Year()-8; year-- {
		t := time.Date(year, m, d, 0, 0, 0, 0, time.Local)
		if t.Month() == m && t.Day() == d && !t.After(now) {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %d/%d", int(m), d)
}

// DateString is --on normalized to 2006-01-02, or the raw value when it does
// not parse so validation can report it.
func (o *OnOptions) DateString() string {
	t, err := o.GetOn()
	if err != nil || t == nil {
		return o.OnString
	}
	return t.Format(layoutDate)
}

func (o *OnOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
