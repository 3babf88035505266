// Package timeutil has the small date helpers shared by stats and the calendar.
package timeutil

import "time"

// StartOfDay is midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MonthAgo is local midnight of the same day number one month before t.
// time.Date normalizes overflow, so March 31 maps to March 2 or 3.
func MonthAgo(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m-1, d, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday is the weekday of the 1st of month, Sunday being 0.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}
