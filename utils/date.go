package utils

import "time"

const DateLayout = "2006-01-02"

// MonthWindow returns the inclusive [first day 00:00:00, last day 23:59:59]
// bounds of the calendar month containing t. Reports fall back to this window
// when the caller supplies no range.
func MonthWindow(t time.Time) (from time.Time, to time.Time) {
	from = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	to = from.AddDate(0, 1, 0).Add(-time.Second)
	return from, to
}

// EndOfDay pins a date-only value to the last second of that day so that
// "to" bounds stay inclusive.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
