package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for storage and input.
const DateLayout = "2006-01-02"

// Layouts accepted when reading dates back from a log. Spreadsheet tools
// tend to rewrite dates, so a few common renderings are tolerated.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"01-02-06",
	"1/2/2006",
	"1/2/06",
	"02.01.2006",
}

// Day truncates t to its calendar day in UTC, dropping time of day.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a stored or typed date into a calendar day.
func ParseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), true
		}
	}
	return time.Time{}, false
}
