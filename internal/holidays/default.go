package holidays

import (
	"time"

	"github.com/zapponejosh/market-holidays/internal/calendar"
)

// DefaultName is the name of the built-in catalog.
const DefaultName = "nyse"

// Default returns the full-day closures of the US equity markets
// (NYSE and NASDAQ), declared in calendar order. Each call builds a new
// catalog.
func Default() *Catalog {
	return MustCatalog(DefaultName,
		Definition{"New Year's Day", calendar.FixedRule(time.January, 1)},
		Definition{"Martin Luther King Jr. Day", calendar.NthWeekdayRule(time.January, time.Monday, calendar.Third)},
		Definition{"Washington's Birthday", calendar.NthWeekdayRule(time.February, time.Monday, calendar.Third)},
		Definition{"Good Friday", calendar.EasterRule(-2)},
		Definition{"Memorial Day", calendar.NthWeekdayRule(time.May, time.Monday, calendar.Last)},
		Definition{"Juneteenth", calendar.FixedRule(time.June, 19)},
		Definition{"Independence Day", calendar.FixedRule(time.July, 4)},
		Definition{"Labor Day", calendar.NthWeekdayRule(time.September, time.Monday, calendar.First)},
		Definition{"Thanksgiving", calendar.NthWeekdayRule(time.November, time.Thursday, calendar.Fourth)},
		Definition{"Christmas", calendar.FixedRule(time.December, 25)},
	)
}
