package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDayStatus(t *testing.T) {
	doc := DefaultDocument("America/New_York")

	closed := SetDayStatus(doc, Sunday, StatusClosed)
	assert.Equal(t, StatusClosed, closed.Regular[Sunday].Status)
	assert.Empty(t, closed.Regular[Sunday].Periods)
	// Input untouched.
	assert.Equal(t, StatusOpen, doc.Regular[Sunday].Status)

	reopened := SetDayStatus(closed, Sunday, StatusOpen)
	require.Len(t, reopened.Regular[Sunday].Periods, 1)
	assert.Equal(t, FixedTime("09:00"), reopened.Regular[Sunday].Periods[0].Open)
}

func TestPeriodActions(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	lunch := Period{Open: FixedTime("13:00"), Close: FixedTime("17:00"), Note: "after lunch"}

	doc = AddPeriod(doc, Monday, lunch)
	require.Len(t, doc.Regular[Monday].Periods, 2)

	updated := UpdatePeriod(doc, Monday, 1, Period{Open: FixedTime("14:00"), Close: FixedTime("18:00")})
	assert.Equal(t, FixedTime("14:00"), updated.Regular[Monday].Periods[1].Open)

	removed := RemovePeriod(updated, Monday, 0)
	require.Len(t, removed.Regular[Monday].Periods, 1)
	assert.Equal(t, FixedTime("14:00"), removed.Regular[Monday].Periods[0].Open)
}

func TestRemovePeriodOutOfRangeIsNoOp(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	doc = AddPeriod(doc, Wednesday, Period{Open: FixedTime("18:00"), Close: FixedTime("21:00")})
	require.Len(t, doc.Regular[Wednesday].Periods, 2)

	out := RemovePeriod(doc, Wednesday, 5)
	assert.Equal(t, doc, out)

	out = UpdatePeriod(doc, Wednesday, -1, Period{Open: FixedTime("10:00"), Close: FixedTime("11:00")})
	assert.Equal(t, doc, out)
}

func TestCopyDay(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	doc = SetDayStatus(doc, Saturday, StatusClosed)

	out := CopyDay(doc, Saturday, []Weekday{Sunday, Monday})
	assert.Equal(t, StatusClosed, out.Regular[Sunday].Status)
	assert.Equal(t, StatusClosed, out.Regular[Monday].Status)
	assert.Equal(t, StatusOpen, out.Regular[Tuesday].Status)
	// Unknown targets are skipped.
	out = CopyDay(doc, Saturday, []Weekday{"caturday"})
	assert.Equal(t, doc, out)
}

func TestSeasonActions(t *testing.T) {
	doc := DefaultDocument("America/New_York")

	doc = AddSeason(doc, Winter)
	require.Contains(t, doc.Seasonal, Winter)

	doc = SetSeasonDateRange(doc, Winter, MonthDay{time.November, 15}, MonthDay{time.February, 15})
	override := doc.Seasonal[Winter]
	assert.True(t, override.UseDateRange)
	require.NotNil(t, override.StartDate)
	assert.Equal(t, MonthDay{time.November, 15}, *override.StartDate)

	doc = SetSeasonDay(doc, Winter, Saturday, Closed())
	assert.Equal(t, StatusClosed, doc.Seasonal[Winter].Days[Saturday].Status)

	doc = RemoveSeason(doc, Winter)
	assert.NotContains(t, doc.Seasonal, Winter)

	// Unknown season is a no-op.
	out := AddSeason(doc, "monsoon")
	assert.Equal(t, doc, out)
}

func TestHolidayActions(t *testing.T) {
	doc := DefaultDocument("America/New_York")

	doc = AddHoliday(doc, "thanksgiving")
	require.Contains(t, doc.Holidays, "thanksgiving")
	assert.Equal(t, OverrideClosed, doc.Holidays["thanksgiving"].Status)

	doc = SetHolidayStatus(doc, "thanksgiving", OverrideModified)
	doc = SetHolidayPeriods(doc, "thanksgiving", []Period{{Open: FixedTime("09:00"), Close: FixedTime("12:00")}})
	require.Len(t, doc.Holidays["thanksgiving"].Periods, 1)

	// Leaving modified clears the periods.
	doc = SetHolidayStatus(doc, "thanksgiving", OverrideOpen)
	assert.Empty(t, doc.Holidays["thanksgiving"].Periods)

	doc = RemoveHoliday(doc, "thanksgiving")
	assert.NotContains(t, doc.Holidays, "thanksgiving")

	out := AddHoliday(doc, "festivus")
	assert.Equal(t, doc, out)
}

func TestExceptionActions(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	date := NewDate(2025, time.December, 24)

	doc = AddException(doc, Exception{Type: ExceptionOneTime, Date: &date, Status: OverrideClosed, Reason: "inventory"})
	require.Len(t, doc.Exceptions, 1)

	newStatus := OverrideModified
	periods := []Period{{Open: FixedTime("09:00"), Close: FixedTime("13:00")}}
	doc = UpdateException(doc, 0, ExceptionPatch{Status: &newStatus, Periods: &periods})
	assert.Equal(t, OverrideModified, doc.Exceptions[0].Status)
	assert.Equal(t, "inventory", doc.Exceptions[0].Reason, "unpatched fields stay put")
	require.Len(t, doc.Exceptions[0].Periods, 1)

	out := UpdateException(doc, 7, ExceptionPatch{Status: &newStatus})
	assert.Equal(t, doc, out)

	doc = RemoveException(doc, 0)
	assert.Empty(t, doc.Exceptions)

	out = RemoveException(doc, 0)
	assert.Equal(t, doc, out)
}

func TestEditedDocumentsStayValid(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	doc = SetDayStatus(doc, Sunday, StatusClosed)
	doc = SetDayStatus(doc, Saturday, StatusTwentyFourHours)
	doc = AddSeason(doc, Summer)
	doc = SetSeasonDay(doc, Summer, Friday, OpenAllDay())
	doc = AddHoliday(doc, "christmasDay")
	date := NewDate(2026, time.July, 5)
	doc = AddException(doc, Exception{Type: ExceptionOneTime, Date: &date, Status: OverrideClosed, Reason: "cleanup"})

	assert.Empty(t, Validate(doc))
}
