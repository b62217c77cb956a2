package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_Normalizes(t *testing.T) {
	assert.Equal(t, NewDate(2024, time.February, 29), NewDate(2024, time.March, 0))
	assert.Equal(t, NewDate(2023, time.March, 1), NewDate(2023, time.February, 29))
	assert.Equal(t, NewDate(2022, time.December, 31), NewDate(2023, time.January, 0))
	assert.Equal(t, NewDate(2024, time.January, 1), NewDate(2023, time.December, 32))
}

func TestDate_Accessors(t *testing.T) {
	d := NewDate(2021, time.July, 4)
	assert.Equal(t, 2021, d.Year())
	assert.Equal(t, time.July, d.Month())
	assert.Equal(t, 4, d.Day())
	assert.Equal(t, time.Sunday, d.Weekday())
	assert.True(t, d.IsWeekend())
	assert.False(t, d.IsZero())
	assert.True(t, Date{}.IsZero())
	assert.Equal(t, time.Date(2021, time.July, 4, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestDateOf_UsesLocation(t *testing.T) {
	ny := time.FixedZone("EDT", -4*60*60)

	// 02:00 UTC on the 5th is still the evening of the 4th in New York.
	ts := time.Date(2021, time.July, 5, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, NewDate(2021, time.July, 5), DateOf(ts))
	assert.Equal(t, NewDate(2021, time.July, 4), DateOf(ts.In(ny)))
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name string
		from Date
		n    int
		want Date
	}{
		{"leap day", NewDate(2024, time.February, 28), 1, NewDate(2024, time.February, 29)},
		{"common year", NewDate(2023, time.February, 28), 1, NewDate(2023, time.March, 1)},
		{"century not leap", NewDate(1900, time.February, 28), 1, NewDate(1900, time.March, 1)},
		{"400 year leap", NewDate(2000, time.February, 28), 1, NewDate(2000, time.February, 29)},
		{"year back", NewDate(2022, time.January, 1), -1, NewDate(2021, time.December, 31)},
		{"year forward", NewDate(2022, time.December, 31), 1, NewDate(2023, time.January, 1)},
		{"zero", NewDate(2022, time.June, 15), 0, NewDate(2022, time.June, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.AddDays(tt.n))
		})
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2021, time.December, 31)
	b := NewDate(2022, time.January, 1)
	c := NewDate(2022, time.February, 1)
	d := NewDate(2022, time.February, 2)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, -1, c.Compare(d))
	assert.Equal(t, 0, d.Compare(NewDate(2022, time.February, 2)))
	assert.True(t, a.Before(b))
	assert.True(t, d.After(c))
	assert.False(t, d.Before(d))
	assert.False(t, d.After(d))
}

func TestDate_StringAndParse(t *testing.T) {
	d := NewDate(2026, time.March, 5)
	assert.Equal(t, "2026-03-05", d.String())

	parsed, err := ParseDate("2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	for _, bad := range []string{"", "2026-3-5", "2026-02-30", "03/05/2026", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "ParseDate(%q)", bad)
	}
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	data, err := json.Marshal(wrapper{Date: NewDate(2021, time.December, 24)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2021-12-24"}`, string(data))

	var got wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2022-04-15"}`), &got))
	assert.Equal(t, NewDate(2022, time.April, 15), got.Date)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"April 15"}`), &got))
}
