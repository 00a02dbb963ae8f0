package hours

import (
	"fmt"
	"time"
)

// Validation error kinds.
const (
	KindIncompleteRegularHours = "IncompleteRegularHours"
	KindInvalidStatus          = "InvalidStatus"
	KindInvalidPeriods         = "InvalidPeriods"
	KindInvalidTimeSpec        = "InvalidTimeSpec"
	KindInvalidPattern         = "InvalidPattern"
	KindMissingDateRange       = "MissingDateRange"
	KindInvalidTimezone        = "InvalidTimezone"
)

// FieldError is one violated invariant, scoped to the field that carries
// it. The validator returns all errors at once so a form can display every
// problem in a single pass.
type FieldError struct {
	Kind    string `json:"kind"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Kind)
}

// Validate enforces the document invariants before persistence. A nil
// result means the document is well formed; the resolver assumes it runs
// only on documents that passed here.
func Validate(doc HoursDocument) []FieldError {
	var errs []FieldError

	for _, day := range Weekdays {
		dayHours, ok := doc.Regular[day]
		if !ok {
			errs = append(errs, FieldError{
				Kind:    KindIncompleteRegularHours,
				Field:   "regular." + string(day),
				Message: "regular hours must configure all seven weekdays",
			})
			continue
		}
		errs = append(errs, validateDayHours(dayHours, "regular."+string(day))...)
	}

	for season, override := range doc.Seasonal {
		field := "seasonal." + string(season)
		if _, known := seasonMonths[season]; !known {
			errs = append(errs, FieldError{
				Kind:    KindInvalidStatus,
				Field:   field,
				Message: fmt.Sprintf("unknown season %q", season),
			})
			continue
		}
		if override.UseDateRange {
			if override.StartDate == nil {
				errs = append(errs, FieldError{Kind: KindMissingDateRange, Field: field + ".startDate", Message: "start date is required when a date range is used"})
			}
			if override.EndDate == nil {
				errs = append(errs, FieldError{Kind: KindMissingDateRange, Field: field + ".endDate", Message: "end date is required when a date range is used"})
			}
		}
		for day, dayHours := range override.Days {
			if _, known := timeWeekday(day); !known {
				errs = append(errs, FieldError{Kind: KindInvalidStatus, Field: field + ".days." + string(day), Message: fmt.Sprintf("unknown weekday %q", day)})
				continue
			}
			errs = append(errs, validateDayHours(dayHours, field+".days."+string(day))...)
		}
	}

	for id, override := range doc.Holidays {
		field := "holidays." + id
		if !KnownHoliday(id) {
			errs = append(errs, FieldError{Kind: KindInvalidStatus, Field: field, Message: fmt.Sprintf("unknown holiday %q", id)})
			continue
		}
		errs = append(errs, validateOverride(override.Status, override.Periods, field)...)
	}

	for i, exc := range doc.Exceptions {
		field := fmt.Sprintf("exceptions[%d]", i)
		switch exc.Type {
		case ExceptionOneTime:
			if exc.Date == nil {
				errs = append(errs, FieldError{Kind: KindInvalidPattern, Field: field + ".date", Message: "one-time exceptions require a date"})
			}
		case ExceptionRecurring:
			errs = append(errs, validatePattern(exc.Pattern, field+".pattern")...)
		default:
			errs = append(errs, FieldError{Kind: KindInvalidPattern, Field: field + ".type", Message: fmt.Sprintf("unknown exception type %q", exc.Type)})
		}
		errs = append(errs, validateOverride(exc.Status, exc.Periods, field)...)
	}

	if doc.Timezone != "" {
		if _, err := time.LoadLocation(doc.Timezone); err != nil {
			errs = append(errs, FieldError{Kind: KindInvalidTimezone, Field: "timezone", Message: fmt.Sprintf("unknown timezone %q", doc.Timezone)})
		}
	}

	return errs
}

// validateDayHours enforces the status/periods coupling: closed and
// 24-hour days carry no periods, open days carry at least one.
func validateDayHours(dayHours DayHours, field string) []FieldError {
	var errs []FieldError
	if !validDayStatus(dayHours.Status) {
		errs = append(errs, FieldError{Kind: KindInvalidStatus, Field: field + ".status", Message: fmt.Sprintf("unknown status %q", dayHours.Status)})
		return errs
	}
	switch dayHours.Status {
	case StatusClosed, StatusTwentyFourHours:
		if len(dayHours.Periods) > 0 {
			errs = append(errs, FieldError{Kind: KindInvalidPeriods, Field: field + ".periods", Message: fmt.Sprintf("%s days must not carry periods", dayHours.Status)})
		}
	case StatusOpen:
		if len(dayHours.Periods) == 0 {
			errs = append(errs, FieldError{Kind: KindInvalidPeriods, Field: field + ".periods", Message: "open days require at least one period"})
		}
	}
	for i, period := range dayHours.Periods {
		errs = append(errs, validatePeriod(period, fmt.Sprintf("%s.periods[%d]", field, i))...)
	}
	return errs
}

// validateOverride enforces the holiday/exception status rules: modified
// overrides require non-empty periods, the others carry none.
func validateOverride(status OverrideStatus, periods []Period, field string) []FieldError {
	var errs []FieldError
	if !validOverrideStatus(status) {
		errs = append(errs, FieldError{Kind: KindInvalidStatus, Field: field + ".status", Message: fmt.Sprintf("unknown override status %q", status)})
		return errs
	}
	if status == OverrideModified && len(periods) == 0 {
		errs = append(errs, FieldError{Kind: KindInvalidPeriods, Field: field + ".periods", Message: "modified overrides require at least one period"})
	}
	if status != OverrideModified && len(periods) > 0 {
		errs = append(errs, FieldError{Kind: KindInvalidPeriods, Field: field + ".periods", Message: fmt.Sprintf("%s overrides must not carry periods", status)})
	}
	for i, period := range periods {
		errs = append(errs, validatePeriod(period, fmt.Sprintf("%s.periods[%d]", field, i))...)
	}
	return errs
}

func validatePeriod(period Period, field string) []FieldError {
	var errs []FieldError
	openMinutes, openErrs := validateTimeSpec(period.Open, field+".open")
	closeMinutes, closeErrs := validateTimeSpec(period.Close, field+".close")
	errs = append(errs, openErrs...)
	errs = append(errs, closeErrs...)
	// Periods are single-day: a fixed close at or before a fixed open has
	// no representation (no midnight spanning in this model).
	if openMinutes >= 0 && closeMinutes >= 0 && closeMinutes <= openMinutes {
		errs = append(errs, FieldError{Kind: KindInvalidPeriods, Field: field, Message: "close time must be later than open time within the same day"})
	}
	return errs
}

// validateTimeSpec checks one boundary and returns its minutes from
// midnight for fixed specs, -1 otherwise.
func validateTimeSpec(spec TimeSpec, field string) (int, []FieldError) {
	switch spec.Type {
	case SpecFixed:
		minutes, err := parseClock(spec.Time)
		if err != nil {
			return -1, []FieldError{{Kind: KindInvalidTimeSpec, Field: field, Message: err.Error()}}
		}
		return minutes, nil
	case SpecDawn, SpecDusk, SpecAppointment, SpecCall:
		return -1, nil
	case "":
		return -1, []FieldError{{Kind: KindInvalidTimeSpec, Field: field, Message: "time spec is required"}}
	default:
		return -1, []FieldError{{Kind: KindInvalidTimeSpec, Field: field, Message: fmt.Sprintf("unknown time spec type %q", spec.Type)}}
	}
}

func validatePattern(pattern *RecurrencePattern, field string) []FieldError {
	if pattern == nil {
		return []FieldError{{Kind: KindInvalidPattern, Field: field, Message: "recurring exceptions require a pattern"}}
	}
	var errs []FieldError
	if pattern.Ordinal != OrdinalLast {
		if _, ok := ordinalRank[pattern.Ordinal]; !ok {
			errs = append(errs, FieldError{Kind: KindInvalidPattern, Field: field + ".ordinal", Message: fmt.Sprintf("unknown ordinal %q", pattern.Ordinal)})
		}
	}
	if _, ok := timeWeekday(pattern.DayOfWeek); !ok {
		errs = append(errs, FieldError{Kind: KindInvalidPattern, Field: field + ".dayOfWeek", Message: fmt.Sprintf("unknown weekday %q", pattern.DayOfWeek)})
	}
	for _, month := range pattern.Months {
		if month < 1 || month > 12 {
			errs = append(errs, FieldError{Kind: KindInvalidPattern, Field: field + ".months", Message: fmt.Sprintf("month %d out of range", month)})
		}
	}
	return errs
}
