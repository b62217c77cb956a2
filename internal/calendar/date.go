// Package calendar provides the date rules used to compute market holidays:
// the weekend-observance shift, nth-weekday-of-month and Easter-relative
// dates, and a civil Date type they all operate on.
package calendar

import (
	"cmp"
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 layout used for every date this package
// formats or parses.
const DateLayout = "2006-01-02"

// Date is a civil calendar date in the proleptic Gregorian calendar.
//
// Dates are values: they compare with ==, are safe to share, and carry no
// time of day or location. Arithmetic is done by the time package at UTC
// midnight so leap years and month lengths follow Go's calendar rules.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for year, month and day. Out-of-range values
// are normalized the same way time.Date normalizes them, so
// NewDate(2024, time.March, 0) is 2024-02-29.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current date in loc.
func Today(loc *time.Location) Date {
	return DateOf(time.Now().In(loc))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) Year() int { return d.year }

func (d Date) Month() time.Month { return d.month }

func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days, n may be negative.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// IsWeekend reports whether d is a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after other.
func (d Date) Compare(other Date) int {
	if c := cmp.Compare(d.year, other.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, other.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, other.day)
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
