// Package dates is the single place where NHPlus converts dates and times
// between their stored text form and time.Time.
//
// Dates are stored as "YYYY-MM-DD", times of day as "HH:MM". Repositories,
// validation and the retention guard all go through this package so the
// encoding cannot drift between entities.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseDate parses a "YYYY-MM-DD" string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders the calendar date of t as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseTime parses an "HH:MM" string. The result carries only hour and minute
// on the zero date, so two parsed times compare by time of day.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t, nil
}

// FormatTime renders the time of day of t as "HH:MM".
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// Today returns the calendar date of now as a "YYYY-MM-DD" stamp.
func Today(now time.Time) string {
	return FormatDate(now)
}

// Truncate drops the time of day, keeping the calendar date of t in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
