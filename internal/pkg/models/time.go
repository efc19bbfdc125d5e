package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTime parses a string in RFC3339 format to time.Time
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// PeriodBounds returns the half-open [start, end) interval covering one
// billing month, in UTC. Collecte recompute scans orders in this interval.
func PeriodBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// PeriodOf returns the billing period a timestamp falls into
func PeriodOf(t time.Time) (int, time.Month) {
	u := t.UTC()
	return u.Year(), u.Month()
}
