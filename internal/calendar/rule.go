package calendar

import (
	"fmt"
	"time"
)

// RuleKind selects how a Rule computes its date.
type RuleKind int

const (
	// FixedDateObserved is a fixed month and day, shifted off weekends
	// by Observed.
	FixedDateObserved RuleKind = iota + 1
	// NthWeekdayOfMonth is the nth (or last) weekday of a month.
	NthWeekdayOfMonth
	// EasterRelative is a day offset from Easter Sunday.
	EasterRelative
)

func (k RuleKind) String() string {
	switch k {
	case FixedDateObserved:
		return "fixed"
	case NthWeekdayOfMonth:
		return "nth_weekday"
	case EasterRelative:
		return "easter_offset"
	}
	return fmt.Sprintf("RuleKind(%d)", int(k))
}

// Rule describes how a holiday's date is derived from a year. The set of
// kinds is closed; build rules with FixedRule, NthWeekdayRule and
// EasterRule. Only the fields belonging to the rule's kind are set.
type Rule struct {
	kind    RuleKind
	month   time.Month
	day     int
	weekday time.Weekday
	ordinal Ordinal
	offset  int
}

// FixedRule returns a FixedDateObserved rule for month and day.
func FixedRule(month time.Month, day int) Rule {
	return Rule{kind: FixedDateObserved, month: month, day: day}
}

// NthWeekdayRule returns a rule for the ord'th weekday of month.
func NthWeekdayRule(month time.Month, weekday time.Weekday, ord Ordinal) Rule {
	return Rule{kind: NthWeekdayOfMonth, month: month, weekday: weekday, ordinal: ord}
}

// EasterRule returns a rule for dayOffset days from Easter Sunday.
func EasterRule(dayOffset int) Rule {
	return Rule{kind: EasterRelative, offset: dayOffset}
}

func (r Rule) Kind() RuleKind { return r.kind }

func (r Rule) Month() time.Month { return r.month }

func (r Rule) Day() int { return r.day }

func (r Rule) Weekday() time.Weekday { return r.weekday }

func (r Rule) Ordinal() Ordinal { return r.ordinal }

func (r Rule) Offset() int { return r.offset }

// Validate checks the rule can resolve to a date in every supported year.
func (r Rule) Validate() error {
	switch r.kind {
	case FixedDateObserved:
		if r.month < time.January || r.month > time.December {
			return fmt.Errorf("%w: month %d", ErrInvalidRule, int(r.month))
		}
		// 2001 is a common year, so February 29 is rejected: a fixed
		// holiday has to exist every year.
		if r.day < 1 || r.day > daysIn(2001, r.month) {
			return fmt.Errorf("%w: %s has no day %d", ErrInvalidRule, r.month, r.day)
		}
		return nil
	case NthWeekdayOfMonth:
		return checkNthWeekday(r.month, r.weekday, r.ordinal)
	case EasterRelative:
		if r.offset < -MaxEasterOffset || r.offset > MaxEasterOffset {
			return fmt.Errorf("%w: easter offset %d", ErrInvalidRule, r.offset)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown kind %d", ErrInvalidRule, int(r.kind))
}

// Resolve returns the date the rule produces for year. Fixed dates are
// returned as observed; the other kinds always land on a weekday and are
// returned unshifted. Every kind fails with ErrYearOutOfRange outside
// MinGregorianYear..MaxSupportedYear.
func (r Rule) Resolve(year int) (Date, error) {
	if err := r.Validate(); err != nil {
		return Date{}, err
	}
	if err := CheckYear(year); err != nil {
		return Date{}, err
	}

	switch r.kind {
	case FixedDateObserved:
		return Observed(NewDate(year, r.month, r.day)), nil
	case NthWeekdayOfMonth:
		return NthWeekday(year, r.month, r.weekday, r.ordinal)
	default:
		return OffsetFromEaster(year, r.offset)
	}
}

// String describes the rule, for example "third Monday of January".
func (r Rule) String() string {
	switch r.kind {
	case FixedDateObserved:
		return fmt.Sprintf("%s %d (observed)", r.month, r.day)
	case NthWeekdayOfMonth:
		return fmt.Sprintf("%s %s of %s", r.ordinal, r.weekday, r.month)
	case EasterRelative:
		switch {
		case r.offset == 0:
			return "Easter Sunday"
		case r.offset < 0:
			return fmt.Sprintf("%d %s before Easter", -r.offset, plural(-r.offset))
		default:
			return fmt.Sprintf("%d %s after Easter", r.offset, plural(r.offset))
		}
	}
	return r.kind.String()
}

func plural(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

func daysIn(year int, month time.Month) int {
	return NewDate(year, month+1, 0).Day()
}
