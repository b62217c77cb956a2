package holidays

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/market-holidays/internal/calendar"
)

// catalogFile is the YAML form of a Catalog:
//
//	name: nyse
//	holidays:
//	  - name: New Year's Day
//	    fixed: {month: january, day: 1}
//	  - name: Martin Luther King Jr. Day
//	    nth_weekday: {month: january, weekday: monday, ordinal: third}
//	  - name: Good Friday
//	    easter_offset: -2
type catalogFile struct {
	Name     string         `yaml:"name"`
	Holidays []holidayEntry `yaml:"holidays"`
}

type holidayEntry struct {
	Name         string           `yaml:"name"`
	Fixed        *fixedEntry      `yaml:"fixed,omitempty"`
	NthWeekday   *nthWeekdayEntry `yaml:"nth_weekday,omitempty"`
	EasterOffset *int             `yaml:"easter_offset,omitempty"`
}

type fixedEntry struct {
	Month yamlMonth `yaml:"month"`
	Day   int       `yaml:"day"`
}

type nthWeekdayEntry struct {
	Month   yamlMonth   `yaml:"month"`
	Weekday yamlWeekday `yaml:"weekday"`
	Ordinal yamlOrdinal `yaml:"ordinal"`
}

// yamlMonth, yamlWeekday and yamlOrdinal accept numbers or English names.
type yamlMonth time.Month

func (m *yamlMonth) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := calendar.ParseMonth(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*m = yamlMonth(parsed)
	return nil
}

func (m yamlMonth) MarshalYAML() (any, error) {
	return calendar.MonthName(time.Month(m)), nil
}

type yamlWeekday time.Weekday

func (wd *yamlWeekday) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := calendar.ParseWeekday(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*wd = yamlWeekday(parsed)
	return nil
}

func (wd yamlWeekday) MarshalYAML() (any, error) {
	return calendar.WeekdayName(time.Weekday(wd)), nil
}

type yamlOrdinal calendar.Ordinal

func (o *yamlOrdinal) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := calendar.ParseOrdinal(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*o = yamlOrdinal(parsed)
	return nil
}

func (o yamlOrdinal) MarshalYAML() (any, error) {
	return calendar.Ordinal(o).String(), nil
}

// LoadCatalog reads a YAML catalog from r. Unknown fields are rejected,
// each holiday must carry exactly one of fixed, nth_weekday or
// easter_offset, and the result is validated like NewCatalog.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	var errs []error
	defs := make([]Definition, 0, len(file.Holidays))
	for i, entry := range file.Holidays {
		rule, err := entry.rule()
		if err != nil {
			errs = append(errs, fmt.Errorf("holiday %d (%q): %w", i+1, entry.Name, err))
			continue
		}
		defs = append(defs, Definition{Name: entry.Name, Rule: rule})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return NewCatalog(file.Name, defs...)
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	cat, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}

func (e holidayEntry) rule() (calendar.Rule, error) {
	set := 0
	var rule calendar.Rule

	if e.Fixed != nil {
		set++
		rule = calendar.FixedRule(time.Month(e.Fixed.Month), e.Fixed.Day)
	}
	if e.NthWeekday != nil {
		set++
		rule = calendar.NthWeekdayRule(
			time.Month(e.NthWeekday.Month),
			time.Weekday(e.NthWeekday.Weekday),
			calendar.Ordinal(e.NthWeekday.Ordinal),
		)
	}
	if e.EasterOffset != nil {
		set++
		rule = calendar.EasterRule(*e.EasterOffset)
	}

	if set != 1 {
		return calendar.Rule{}, fmt.Errorf("%w: want exactly one of fixed, nth_weekday, easter_offset; got %d", ErrInvalidCatalog, set)
	}
	return rule, nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *Catalog) MarshalYAML() (any, error) {
	file := catalogFile{
		Name:     c.name,
		Holidays: make([]holidayEntry, 0, len(c.defs)),
	}

	for _, def := range c.defs {
		entry := holidayEntry{Name: def.Name}
		r := def.Rule
		switch r.Kind() {
		case calendar.FixedDateObserved:
			entry.Fixed = &fixedEntry{Month: yamlMonth(r.Month()), Day: r.Day()}
		case calendar.NthWeekdayOfMonth:
			entry.NthWeekday = &nthWeekdayEntry{
				Month:   yamlMonth(r.Month()),
				Weekday: yamlWeekday(r.Weekday()),
				Ordinal: yamlOrdinal(r.Ordinal()),
			}
		case calendar.EasterRelative:
			offset := r.Offset()
			entry.EasterOffset = &offset
		}
		file.Holidays = append(file.Holidays, entry)
	}

	return file, nil
}

// WriteYAML writes the catalog to w in the format LoadCatalog reads.
func (c *Catalog) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}
