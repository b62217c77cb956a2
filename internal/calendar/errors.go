package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule is returned when rule parameters cannot resolve to a
	// date: a month outside 1..12, a day the month never has, an unknown
	// weekday or ordinal, or an Easter offset out of bounds.
	ErrInvalidRule = errors.New("invalid holiday rule")

	// ErrYearOutOfRange is returned for years before the Gregorian
	// calendar was adopted, where the Easter computation does not apply,
	// and for years that no longer fit a four-digit YYYY-MM-DD date.
	ErrYearOutOfRange = errors.New("year out of supported range")
)

const (
	// MinGregorianYear is the first full year of the Gregorian calendar.
	MinGregorianYear = 1583

	// MaxSupportedYear is the last year whose dates format as YYYY-MM-DD.
	MaxSupportedYear = 9999
)

// CheckYear returns ErrYearOutOfRange unless year lies in
// MinGregorianYear..MaxSupportedYear.
func CheckYear(year int) error {
	switch {
	case year < MinGregorianYear:
		return fmt.Errorf("%w: %d is before %d", ErrYearOutOfRange, year, MinGregorianYear)
	case year > MaxSupportedYear:
		return fmt.Errorf("%w: %d is after %d", ErrYearOutOfRange, year, MaxSupportedYear)
	}
	return nil
}
