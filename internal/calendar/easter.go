package calendar

import (
	"fmt"
	"time"
)

// MaxEasterOffset bounds how far from Easter an Easter-relative rule may
// reach, in days either way.
const MaxEasterOffset = 300

// EasterSunday calculates the date of Easter Sunday for a given year using
// the anonymous Gregorian computus (Meeus/Jones/Butcher).
//
// The result always falls between March 22 and April 25. Years outside
// MinGregorianYear..MaxSupportedYear return ErrYearOutOfRange.
func EasterSunday(year int) (Date, error) {
	if err := CheckYear(year); err != nil {
		return Date{}, err
	}

	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return NewDate(year, time.Month(month), day), nil
}

// OffsetFromEaster returns the date dayOffset days from Easter Sunday of
// year. Good Friday is -2, Easter Monday is 1.
func OffsetFromEaster(year, dayOffset int) (Date, error) {
	if dayOffset < -MaxEasterOffset || dayOffset > MaxEasterOffset {
		return Date{}, fmt.Errorf("%w: easter offset %d", ErrInvalidRule, dayOffset)
	}
	easter, err := EasterSunday(year)
	if err != nil {
		return Date{}, err
	}
	return easter.AddDays(dayOffset), nil
}
