package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day and no timezone.
// The zero value means "no date". Dates compare with ==, so they
// work as map keys and support the exact-match filtering the
// aggregator needs — never a range comparison.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a strict "YYYY-MM-DD" string. Out-of-range
// components (month 13, February 30th) are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf truncates a timestamp to its calendar date in the timestamp's
// own location. A record logged at 2018-12-09T23:30:00+05:00 belongs to
// 2018-12-09 — the local date where it was logged, not the UTC date.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// IsZero reports whether d is the absent date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String renders the date in "YYYY-MM-DD" form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
