package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayDates(t *testing.T) {
	tests := []struct {
		id   string
		year int
		want Date
	}{
		{id: "newYearsDay", year: 2025, want: NewDate(2025, time.January, 1)},
		{id: "mlkDay", year: 2025, want: NewDate(2025, time.January, 20)},
		{id: "presidentsDay", year: 2025, want: NewDate(2025, time.February, 17)},
		{id: "goodFriday", year: 2025, want: NewDate(2025, time.April, 18)},
		{id: "easter", year: 2024, want: NewDate(2024, time.March, 31)},
		{id: "easter", year: 2025, want: NewDate(2025, time.April, 20)},
		{id: "easter", year: 2026, want: NewDate(2026, time.April, 5)},
		{id: "easterMonday", year: 2025, want: NewDate(2025, time.April, 21)},
		{id: "mothersDay", year: 2025, want: NewDate(2025, time.May, 11)},
		{id: "memorialDay", year: 2025, want: NewDate(2025, time.May, 26)},
		{id: "fathersDay", year: 2025, want: NewDate(2025, time.June, 15)},
		{id: "laborDay", year: 2025, want: NewDate(2025, time.September, 1)},
		{id: "columbusDay", year: 2025, want: NewDate(2025, time.October, 13)},
		{id: "thanksgiving", year: 2025, want: NewDate(2025, time.November, 27)},
		{id: "dayAfterThanksgiving", year: 2025, want: NewDate(2025, time.November, 28)},
		{id: "christmasDay", year: 2025, want: NewDate(2025, time.December, 25)},
	}

	for _, tt := range tests {
		got, ok := HolidayDate(tt.id, tt.year)
		require.True(t, ok, "%s must be in the catalog", tt.id)
		assert.Equal(t, tt.want, got, "%s %d", tt.id, tt.year)
	}
}

func TestHolidayDateUnknownID(t *testing.T) {
	_, ok := HolidayDate("festivus", 2025)
	assert.False(t, ok)
	assert.False(t, KnownHoliday("festivus"))
	assert.True(t, KnownHoliday("juneteenth"))
}

func TestHolidayCatalogWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, rule := range HolidayCatalog {
		assert.NotEmpty(t, rule.ID)
		assert.NotEmpty(t, rule.Label)
		assert.False(t, seen[rule.ID], "duplicate id %s", rule.ID)
		seen[rule.ID] = true

		// Every rule must produce a date in the requested year.
		got := rule.DateIn(2027)
		assert.Equal(t, 2027, got.Year, "rule %s", rule.ID)
	}
}

func TestNthWeekdayOfMonthLastOccurrence(t *testing.T) {
	// May 2025 has Mondays on 5, 12, 19, 26.
	got := nthWeekdayOfMonth(2025, time.May, Monday, OrdinalLast)
	assert.Equal(t, NewDate(2025, time.May, 26), got)

	// February 2027: four Sundays, last is the 28th.
	got = nthWeekdayOfMonth(2027, time.February, Sunday, OrdinalLast)
	assert.Equal(t, NewDate(2027, time.February, 28), got)
}
