package holidays

import "github.com/zapponejosh/market-holidays/internal/calendar"

// Holiday is one resolved holiday: its name and observed date.
type Holiday struct {
	Name string        `json:"name"`
	Date calendar.Date `json:"date"`
}

// YearSet is the holiday list for one year, one entry per catalog
// definition in catalog order. Year is the nominal year the rules were
// evaluated for; an observed date may fall in the adjacent year.
type YearSet struct {
	Year     int       `json:"year"`
	Holidays []Holiday `json:"holidays"`
}

// Len returns the number of holidays in the set.
func (s YearSet) Len() int { return len(s.Holidays) }

// Lookup returns the holiday observed on d, if any.
func (s YearSet) Lookup(d calendar.Date) (Holiday, bool) {
	for _, h := range s.Holidays {
		if h.Date == d {
			return h, true
		}
	}
	return Holiday{}, false
}

// Dates returns the observed dates in set order.
func (s YearSet) Dates() []calendar.Date {
	dates := make([]calendar.Date, len(s.Holidays))
	for i, h := range s.Holidays {
		dates[i] = h.Date
	}
	return dates
}

// Ordered reports whether the dates are non-decreasing, which holds when
// the catalog is declared in calendar order.
func (s YearSet) Ordered() bool {
	for i := 1; i < len(s.Holidays); i++ {
		if s.Holidays[i].Date.Before(s.Holidays[i-1].Date) {
			return false
		}
	}
	return true
}
