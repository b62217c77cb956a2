package calendar

import "time"

// Observed returns the date a holiday falling on d is actually observed.
// Saturday moves back to Friday, Sunday moves forward to Monday and
// weekdays are unchanged.
//
// A Saturday January 1 is observed on December 31 of the previous year.
func Observed(d Date) Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(-1)
	case time.Sunday:
		return d.AddDays(1)
	default:
		return d
	}
}
