package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthMap = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var weekdayMap = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseMonth parses a month given as 1..12 or as an English name or
// abbreviation ("Jan", "january"), case-insensitively.
func ParseMonth(s string) (time.Month, error) {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), "."))
	if n, err := strconv.Atoi(key); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: month %d", ErrInvalidRule, n)
		}
		return time.Month(n), nil
	}
	if m, ok := monthMap[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidRule, s)
}

// ParseWeekday parses a weekday given as an English name or abbreviation
// ("Mon", "monday"), or as 0..6 with 0 for Sunday like time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), "."))
	if n, err := strconv.Atoi(key); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("%w: weekday %d", ErrInvalidRule, n)
		}
		return time.Weekday(n), nil
	}
	if wd, ok := weekdayMap[key]; ok {
		return wd, nil
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidRule, s)
}

// MonthName returns the lower-case English name of m, as used in catalog
// files.
func MonthName(m time.Month) string { return strings.ToLower(m.String()) }

// WeekdayName returns the lower-case English name of wd.
func WeekdayName(wd time.Weekday) string { return strings.ToLower(wd.String()) }
