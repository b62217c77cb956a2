// Package holidays builds a market's holiday list for a year from an
// immutable catalog of holiday rules.
package holidays

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zapponejosh/market-holidays/internal/calendar"
)

// ErrInvalidCatalog is returned when a catalog cannot be constructed.
var ErrInvalidCatalog = errors.New("invalid holiday catalog")

// Definition names a holiday and the rule that produces its date.
type Definition struct {
	Name string
	Rule calendar.Rule
}

// Catalog is an ordered, validated list of holiday definitions for one
// market. It is read-only once built and safe to share between goroutines.
type Catalog struct {
	name string
	defs []Definition
}

// NewCatalog validates defs and returns a catalog holding a copy of them
// in the given order. Every rule must validate, names must be non-empty and
// unique, and at least one definition is required. All problems are
// reported together.
func NewCatalog(name string, defs ...Definition) (*Catalog, error) {
	var errs []error

	if strings.TrimSpace(name) == "" {
		errs = append(errs, fmt.Errorf("%w: catalog name is required", ErrInvalidCatalog))
	}
	if len(defs) == 0 {
		errs = append(errs, fmt.Errorf("%w: catalog %q has no holidays", ErrInvalidCatalog, name))
	}

	seen := make(map[string]int, len(defs))
	for i, def := range defs {
		if strings.TrimSpace(def.Name) == "" {
			errs = append(errs, fmt.Errorf("%w: holiday %d has no name", ErrInvalidCatalog, i+1))
		} else if prev, ok := seen[def.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: %q defined twice (entries %d and %d)", ErrInvalidCatalog, def.Name, prev+1, i+1))
		} else {
			seen[def.Name] = i
		}

		if err := def.Rule.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("holiday %q: %w", def.Name, err))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Catalog{
		name: name,
		defs: append([]Definition(nil), defs...),
	}, nil
}

// MustCatalog is like NewCatalog but panics on error. It is meant for
// catalogs declared in code.
func MustCatalog(name string, defs ...Definition) *Catalog {
	c, err := NewCatalog(name, defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the catalog's market name.
func (c *Catalog) Name() string { return c.name }

// Len returns the number of holidays in the catalog.
func (c *Catalog) Len() int { return len(c.defs) }

// Definitions returns a copy of the catalog's definitions in order.
func (c *Catalog) Definitions() []Definition {
	return append([]Definition(nil), c.defs...)
}
