package holidays

import (
	"errors"
	"fmt"

	"github.com/zapponejosh/market-holidays/internal/calendar"
)

// ErrInvalidRange is returned when a year range starts after it ends.
var ErrInvalidRange = errors.New("invalid year range")

// Generator computes holiday lists from a catalog. It holds no state
// beyond the catalog and is safe for concurrent use.
type Generator struct {
	catalog *Catalog
}

// NewGenerator returns a generator for cat. It panics if cat is nil.
func NewGenerator(cat *Catalog) *Generator {
	if cat == nil {
		panic("holidays: NewGenerator called with nil catalog")
	}
	return &Generator{catalog: cat}
}

// Catalog returns the catalog the generator evaluates.
func (g *Generator) Catalog() *Catalog { return g.catalog }

// Generate returns the holidays of year in catalog order. Either every
// definition resolves or an error is returned and no set is produced. The
// only input-dependent failure is calendar.ErrYearOutOfRange.
func (g *Generator) Generate(year int) (YearSet, error) {
	if err := calendar.CheckYear(year); err != nil {
		return YearSet{}, err
	}

	set := YearSet{
		Year:     year,
		Holidays: make([]Holiday, 0, g.catalog.Len()),
	}
	for _, def := range g.catalog.defs {
		date, err := def.Rule.Resolve(year)
		if err != nil {
			return YearSet{}, fmt.Errorf("resolve %q for %d: %w", def.Name, year, err)
		}
		set.Holidays = append(set.Holidays, Holiday{Name: def.Name, Date: date})
	}

	return set, nil
}

// GenerateRange returns one YearSet per year from from to to inclusive,
// in ascending order. Both ends are checked before anything is generated.
func (g *Generator) GenerateRange(from, to int) ([]YearSet, error) {
	if from > to {
		return nil, fmt.Errorf("%w: %d is after %d", ErrInvalidRange, from, to)
	}
	if err := calendar.CheckYear(from); err != nil {
		return nil, err
	}
	if err := calendar.CheckYear(to); err != nil {
		return nil, err
	}

	// Both ends are within the supported years, so the span cannot overflow.
	sets := make([]YearSet, 0, to-from+1)
	for year := from; year <= to; year++ {
		set, err := g.Generate(year)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// IsHoliday reports whether the market is closed for a holiday on d. The
// neighboring years are checked too, since a Saturday New Year's Day is
// observed on December 31 of the year before.
func (g *Generator) IsHoliday(d calendar.Date) (Holiday, bool, error) {
	if err := calendar.CheckYear(d.Year()); err != nil {
		return Holiday{}, false, err
	}

	for _, year := range []int{d.Year(), d.Year() + 1, d.Year() - 1} {
		if calendar.CheckYear(year) != nil {
			continue
		}
		set, err := g.Generate(year)
		if err != nil {
			return Holiday{}, false, err
		}
		if h, ok := set.Lookup(d); ok {
			return h, true, nil
		}
	}
	return Holiday{}, false, nil
}
