package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Ordinal is the position of a weekday within a month.
type Ordinal int

// Fifth is deliberately missing: it does not exist in every month.
const (
	Last   Ordinal = -1
	First  Ordinal = 1
	Second Ordinal = 2
	Third  Ordinal = 3
	Fourth Ordinal = 4
)

var ordinalNames = map[Ordinal]string{
	First:  "first",
	Second: "second",
	Third:  "third",
	Fourth: "fourth",
	Last:   "last",
}

// Valid reports whether o is one of First..Fourth or Last.
func (o Ordinal) Valid() bool {
	_, ok := ordinalNames[o]
	return ok
}

func (o Ordinal) String() string {
	if name, ok := ordinalNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Ordinal(%d)", int(o))
}

// ParseOrdinal parses "first".."fourth", "last", or the short forms
// "1st".."4th", case-insensitively.
func ParseOrdinal(s string) (Ordinal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "1st", "1":
		return First, nil
	case "second", "2nd", "2":
		return Second, nil
	case "third", "3rd", "3":
		return Third, nil
	case "fourth", "4th", "4":
		return Fourth, nil
	case "last", "-1":
		return Last, nil
	}
	return 0, fmt.Errorf("%w: unknown ordinal %q", ErrInvalidRule, s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Ordinal) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: ordinal %d", ErrInvalidRule, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Ordinal) UnmarshalText(text []byte) error {
	parsed, err := ParseOrdinal(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// NthWeekday returns the date of the ord'th weekday in month of year, such
// as the third Monday of January or the last Monday of May. The result is
// always inside the requested month.
func NthWeekday(year int, month time.Month, weekday time.Weekday, ord Ordinal) (Date, error) {
	if err := checkNthWeekday(month, weekday, ord); err != nil {
		return Date{}, err
	}

	if ord == Last {
		// Day 0 of the following month is the last day of this one.
		last := NewDate(year, month+1, 0)
		back := (int(last.Weekday()) - int(weekday) + 7) % 7
		return last.AddDays(-back), nil
	}

	first := NewDate(year, month, 1)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDays(offset + (int(ord)-1)*7), nil
}

func checkNthWeekday(month time.Month, weekday time.Weekday, ord Ordinal) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidRule, int(month))
	}
	if weekday < time.Sunday || weekday > time.Saturday {
		return fmt.Errorf("%w: weekday %d", ErrInvalidRule, int(weekday))
	}
	if !ord.Valid() {
		return fmt.Errorf("%w: ordinal %d", ErrInvalidRule, int(ord))
	}
	return nil
}
