package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the fallback stats window used when none is provided.
	DefaultWindow = "1w"

	Day  = 24 * time.Hour
	Week = 7 * Day
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"d":     Day,
		"day":   Day,
		"days":  Day,
		"w":     Week,
		"wk":    Week,
		"wks":   Week,
		"week":  Week,
		"weeks": Week,
	}
)

// ParseWindow parses a look-back window such as "3d", "2w" or "1w3d" and
// returns the duration along with a canonical label. Records carry calendar
// dates only, so windows are whole days. Empty input means one week.
func ParseWindow(input string) (time.Duration, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("timeutil: invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 32)
		if err != nil {
			return 0, "", fmt.Errorf("timeutil: invalid window value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("timeutil: unsupported window unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("timeutil: window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a duration as week and day tokens. Remainders below a
// day are dropped.
func FormatWindow(d time.Duration) string {
	if d < Day {
		return "0d"
	}
	var b strings.Builder
	if w := d / Week; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
		d -= w * Week
	}
	if days := d / Day; days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	return b.String()
}
