package database

import (
	"time"

	"github.com/zapponejosh/market-holidays/internal/calendar"
	"github.com/zapponejosh/market-holidays/internal/holidays"
)

// StoredHoliday is one row of the holidays table.
type StoredHoliday struct {
	ID        int64         `json:"id"`
	Catalog   string        `json:"catalog"`
	Year      int           `json:"year"`
	Position  int           `json:"position"`
	Name      string        `json:"name"`
	Date      calendar.Date `json:"date"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Holiday converts the row back to the generator's form.
func (h StoredHoliday) Holiday() holidays.Holiday {
	return holidays.Holiday{Name: h.Name, Date: h.Date}
}

// GroupByYear folds rows sorted by year then position into year sets.
func GroupByYear(rows []StoredHoliday) []holidays.YearSet {
	var sets []holidays.YearSet
	for _, row := range rows {
		if len(sets) == 0 || sets[len(sets)-1].Year != row.Year {
			sets = append(sets, holidays.YearSet{Year: row.Year})
		}
		last := &sets[len(sets)-1]
		last.Holidays = append(last.Holidays, row.Holiday())
	}
	return sets
}
