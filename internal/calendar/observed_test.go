package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObserved(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want Date
	}{
		{"saturday to friday", NewDate(2021, time.December, 25), NewDate(2021, time.December, 24)},
		{"sunday to monday", NewDate(2021, time.July, 4), NewDate(2021, time.July, 5)},
		{"weekday unchanged", NewDate(2023, time.July, 4), NewDate(2023, time.July, 4)},
		{"friday unchanged", NewDate(2026, time.December, 25), NewDate(2026, time.December, 25)},
		{"monday unchanged", NewDate(2024, time.January, 1), NewDate(2024, time.January, 1)},
		{"saturday new year crosses year", NewDate(2022, time.January, 1), NewDate(2021, time.December, 31)},
		{"sunday new year eve crosses year", NewDate(2023, time.December, 31), NewDate(2024, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Observed(tt.date))
		})
	}
}

func TestObserved_IdempotentAndWeekday(t *testing.T) {
	d := NewDate(2019, time.January, 1)
	end := NewDate(2031, time.January, 1)
	for ; d.Before(end); d = d.AddDays(1) {
		once := Observed(d)
		assert.Equal(t, once, Observed(once), "Observed not idempotent for %s", d)
		assert.False(t, once.IsWeekend(), "Observed(%s) = %s is a weekend", d, once)

		diff := once.Time().Sub(d.Time())
		assert.LessOrEqual(t, diff.Abs(), 24*time.Hour, "Observed(%s) moved more than a day", d)
	}
}
