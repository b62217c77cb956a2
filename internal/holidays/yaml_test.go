package holidays

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/market-holidays/internal/calendar"
)

const sampleCatalog = `
name: lse
holidays:
  - name: New Year's Day
    fixed: {month: jan, day: 1}
  - name: Good Friday
    easter_offset: -2
  - name: Easter Monday
    easter_offset: 1
  - name: Early May Bank Holiday
    nth_weekday: {month: 5, weekday: monday, ordinal: 1st}
  - name: Spring Bank Holiday
    nth_weekday: {month: may, weekday: mon, ordinal: last}
  - name: Christmas Day
    fixed: {month: December, day: 25}
`

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, "lse", cat.Name())
	assert.Equal(t, []Definition{
		{Name: "New Year's Day", Rule: calendar.FixedRule(time.January, 1)},
		{Name: "Good Friday", Rule: calendar.EasterRule(-2)},
		{Name: "Easter Monday", Rule: calendar.EasterRule(1)},
		{Name: "Early May Bank Holiday", Rule: calendar.NthWeekdayRule(time.May, time.Monday, calendar.First)},
		{Name: "Spring Bank Holiday", Rule: calendar.NthWeekdayRule(time.May, time.Monday, calendar.Last)},
		{Name: "Christmas Day", Rule: calendar.FixedRule(time.December, 25)},
	}, cat.Definitions())

	set, err := NewGenerator(cat).Generate(2025)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.April, 21), mustLookupName(t, set, "Easter Monday"))
	assert.Equal(t, date(2025, time.May, 5), mustLookupName(t, set, "Early May Bank Holiday"))
	assert.Equal(t, date(2025, time.May, 26), mustLookupName(t, set, "Spring Bank Holiday"))
}

func TestCatalog_YAMLRoundTrip(t *testing.T) {
	orig := Default()

	var buf bytes.Buffer
	require.NoError(t, orig.WriteYAML(&buf))

	out := buf.String()
	assert.Contains(t, out, "name: nyse")
	assert.Contains(t, out, "month: january")
	assert.Contains(t, out, "ordinal: third")
	assert.Contains(t, out, "easter_offset: -2")

	loaded, err := LoadCatalog(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig.Name(), loaded.Name())
	assert.Equal(t, orig.Definitions(), loaded.Definitions())
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantIs  error
		wantMsg string
	}{
		{
			name:    "empty document",
			input:   "",
			wantIs:  ErrInvalidCatalog,
			wantMsg: "catalog is empty",
		},
		{
			name:    "unknown field",
			input:   "name: x\nmarket: y\nholidays: []\n",
			wantIs:  ErrInvalidCatalog,
			wantMsg: "market",
		},
		{
			name:    "no rule",
			input:   "name: x\nholidays:\n  - name: A\n",
			wantIs:  ErrInvalidCatalog,
			wantMsg: "got 0",
		},
		{
			name:    "two rules",
			input:   "name: x\nholidays:\n  - name: A\n    easter_offset: 1\n    fixed: {month: 1, day: 1}\n",
			wantIs:  ErrInvalidCatalog,
			wantMsg: "got 2",
		},
		{
			name:    "bad month name",
			input:   "name: x\nholidays:\n  - name: A\n    fixed: {month: smarch, day: 1}\n",
			wantIs:  calendar.ErrInvalidRule,
			wantMsg: "smarch",
		},
		{
			name:    "bad ordinal",
			input:   "name: x\nholidays:\n  - name: A\n    nth_weekday: {month: 1, weekday: monday, ordinal: fifth}\n",
			wantIs:  calendar.ErrInvalidRule,
			wantMsg: "fifth",
		},
		{
			name:    "leap day",
			input:   "name: x\nholidays:\n  - name: A\n    fixed: {month: february, day: 29}\n",
			wantIs:  calendar.ErrInvalidRule,
			wantMsg: "no day 29",
		},
		{
			name:    "offset too large",
			input:   "name: x\nholidays:\n  - name: A\n    easter_offset: 400\n",
			wantIs:  calendar.ErrInvalidRule,
			wantMsg: "400",
		},
		{
			name:    "no holidays",
			input:   "name: x\nholidays: []\n",
			wantIs:  ErrInvalidCatalog,
			wantMsg: "no holidays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := LoadCatalog(strings.NewReader(tt.input))
			assert.Nil(t, cat)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	cat, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cat.Len())

	_, err = LoadCatalogFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
