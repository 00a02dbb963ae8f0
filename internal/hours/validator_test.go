package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrorFor(errs []FieldError, field string) *FieldError {
	for _, err := range errs {
		if err.Field == field {
			e := err
			return &e
		}
	}
	return nil
}

func TestValidateDefaultDocument(t *testing.T) {
	assert.Empty(t, Validate(DefaultDocument("America/New_York")))
}

func TestValidateMissingWeekday(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	delete(doc.Regular, Sunday)

	errs := Validate(doc)
	require.NotEmpty(t, errs)
	err := fieldErrorFor(errs, "regular.sunday")
	require.NotNil(t, err)
	assert.Equal(t, KindIncompleteRegularHours, err.Kind)
}

func TestValidateClosedDayWithPeriods(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	doc.Regular[Monday] = DayHours{
		Status:  StatusClosed,
		Periods: []Period{{Open: FixedTime("09:00"), Close: FixedTime("17:00")}},
	}

	err := fieldErrorFor(Validate(doc), "regular.monday.periods")
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidPeriods, err.Kind)
}

func TestValidateOpenDayWithoutPeriods(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	doc.Regular[Friday] = DayHours{Status: StatusOpen}

	err := fieldErrorFor(Validate(doc), "regular.friday.periods")
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidPeriods, err.Kind)
}

func TestValidatePeriodBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		field  string
		kind   string
	}{
		{
			name:   "missing close spec",
			period: Period{Open: FixedTime("09:00")},
			field:  "regular.monday.periods[0].close",
			kind:   KindInvalidTimeSpec,
		},
		{
			name:   "malformed clock time",
			period: Period{Open: FixedTime("9am"), Close: FixedTime("17:00")},
			field:  "regular.monday.periods[0].open",
			kind:   KindInvalidTimeSpec,
		},
		{
			name:   "close before open",
			period: Period{Open: FixedTime("17:00"), Close: FixedTime("09:00")},
			field:  "regular.monday.periods[0]",
			kind:   KindInvalidPeriods,
		},
		{
			name:   "unknown spec type",
			period: Period{Open: TimeSpec{Type: "sunset"}, Close: FixedTime("17:00")},
			field:  "regular.monday.periods[0].open",
			kind:   KindInvalidTimeSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := DefaultDocument("America/New_York")
			doc.Regular[Monday] = DayHours{Status: StatusOpen, Periods: []Period{tt.period}}

			err := fieldErrorFor(Validate(doc), tt.field)
			require.NotNil(t, err, "expected an error on %s", tt.field)
			assert.Equal(t, tt.kind, err.Kind)
		})
	}
}

func TestValidateSolarPeriodAccepted(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	doc.Regular[Saturday] = DayHours{Status: StatusOpen, Periods: []Period{
		{Open: SolarTime(SpecDawn, -30), Close: SolarTime(SpecDusk, 30)},
	}}
	assert.Empty(t, Validate(doc))
}

func TestValidateSeasonalDateRange(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	doc.Seasonal = map[Season]SeasonalOverride{
		Winter: {UseDateRange: true},
	}

	errs := Validate(doc)
	require.NotNil(t, fieldErrorFor(errs, "seasonal.winter.startDate"))
	require.NotNil(t, fieldErrorFor(errs, "seasonal.winter.endDate"))
}

func TestValidateHolidayOverride(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	doc.Holidays = map[string]HolidayOverride{
		"thanksgiving": {Status: OverrideModified},
		"festivus":     {Status: OverrideClosed},
	}

	errs := Validate(doc)
	modified := fieldErrorFor(errs, "holidays.thanksgiving.periods")
	require.NotNil(t, modified)
	assert.Equal(t, KindInvalidPeriods, modified.Kind)
	assert.NotNil(t, fieldErrorFor(errs, "holidays.festivus"))
}

func TestValidateExceptions(t *testing.T) {
	date := NewDate(2025, time.July, 4)
	doc := DefaultDocument("America/New_York")
	doc.Exceptions = []Exception{
		{Type: ExceptionOneTime, Status: OverrideClosed},
		{Type: ExceptionRecurring, Status: OverrideClosed,
			Pattern: &RecurrencePattern{Ordinal: "fifth", DayOfWeek: "someday", Months: []int{0, 13}}},
		{Type: ExceptionOneTime, Date: &date, Status: OverrideClosed},
	}

	errs := Validate(doc)
	assert.NotNil(t, fieldErrorFor(errs, "exceptions[0].date"))
	assert.NotNil(t, fieldErrorFor(errs, "exceptions[1].pattern.ordinal"))
	assert.NotNil(t, fieldErrorFor(errs, "exceptions[1].pattern.dayOfWeek"))
	assert.NotNil(t, fieldErrorFor(errs, "exceptions[1].pattern.months"))
	assert.Nil(t, fieldErrorFor(errs, "exceptions[2].date"))
}

func TestValidateCollectsAllErrors(t *testing.T) {
	doc := DefaultDocument("America/New_York")
	delete(doc.Regular, Sunday)
	doc.Regular[Monday] = DayHours{Status: StatusOpen}
	doc.Timezone = "Mars/Olympus_Mons"

	errs := Validate(doc)
	assert.GreaterOrEqual(t, len(errs), 3, "validator must report every problem at once")
	assert.NotNil(t, fieldErrorFor(errs, "timezone"))
}
