package utils

import (
	"strings"
	"time"
)

const (
	layoutDate    = "2006-01-02"
	layoutDisplay = "02 Jan 2006"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// DisplayDate formats a trip date as "02 Jan 2006"; zero time gives "".
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layoutDisplay)
}

// TripDay returns the calendar date of 0-based day i of a trip starting at start.
func TripDay(start time.Time, i int) time.Time {
	if start.IsZero() {
		return time.Time{}
	}
	return start.AddDate(0, 0, i)
}
