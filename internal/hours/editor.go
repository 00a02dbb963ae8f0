package hours

// Editor actions. Each one takes a document by value, returns a new
// document, and never mutates its input, so the UI gets cheap undo/redo
// and predictable re-renders. Every action is total: out-of-range indexes
// and unknown keys are no-ops that return the document unchanged.

// SetDayStatus changes a weekday's status. Switching away from open clears
// the periods; switching to open seeds the default 09:00-17:00 period when
// none are configured, keeping the document valid after every action.
func SetDayStatus(doc HoursDocument, day Weekday, status DayStatus) HoursDocument {
	out := doc.Clone()
	dayHours, ok := out.Regular[day]
	if !ok || !validDayStatus(status) {
		return out
	}
	dayHours.Status = status
	switch status {
	case StatusOpen:
		if len(dayHours.Periods) == 0 {
			dayHours.Periods = DefaultDayHours().Periods
		}
	default:
		dayHours.Periods = nil
	}
	out.Regular[day] = dayHours
	return out
}

// AddPeriod appends a period to a weekday.
func AddPeriod(doc HoursDocument, day Weekday, period Period) HoursDocument {
	out := doc.Clone()
	dayHours, ok := out.Regular[day]
	if !ok {
		return out
	}
	dayHours.Periods = append(dayHours.Periods, period)
	out.Regular[day] = dayHours
	return out
}

// UpdatePeriod replaces the period at index.
func UpdatePeriod(doc HoursDocument, day Weekday, index int, period Period) HoursDocument {
	out := doc.Clone()
	dayHours, ok := out.Regular[day]
	if !ok || index < 0 || index >= len(dayHours.Periods) {
		return out
	}
	dayHours.Periods[index] = period
	out.Regular[day] = dayHours
	return out
}

// RemovePeriod deletes the period at index.
func RemovePeriod(doc HoursDocument, day Weekday, index int) HoursDocument {
	out := doc.Clone()
	dayHours, ok := out.Regular[day]
	if !ok || index < 0 || index >= len(dayHours.Periods) {
		return out
	}
	dayHours.Periods = append(dayHours.Periods[:index], dayHours.Periods[index+1:]...)
	out.Regular[day] = dayHours
	return out
}

// CopyDay replicates the source weekday's hours onto the target weekdays.
func CopyDay(doc HoursDocument, source Weekday, targets []Weekday) HoursDocument {
	out := doc.Clone()
	sourceHours, ok := out.Regular[source]
	if !ok {
		return out
	}
	for _, target := range targets {
		if _, ok := out.Regular[target]; !ok {
			continue
		}
		out.Regular[target] = sourceHours.clone()
	}
	return out
}

// AddSeason enables a seasonal override with its fixed calendar months and
// no per-day configuration yet.
func AddSeason(doc HoursDocument, season Season) HoursDocument {
	out := doc.Clone()
	if _, known := seasonMonths[season]; !known {
		return out
	}
	if out.Seasonal == nil {
		out.Seasonal = make(map[Season]SeasonalOverride)
	}
	if _, exists := out.Seasonal[season]; !exists {
		out.Seasonal[season] = SeasonalOverride{}
	}
	return out
}

// RemoveSeason drops a seasonal override.
func RemoveSeason(doc HoursDocument, season Season) HoursDocument {
	out := doc.Clone()
	delete(out.Seasonal, season)
	return out
}

// SetSeasonDateRange switches a season from fixed months to an explicit
// annually recurring window.
func SetSeasonDateRange(doc HoursDocument, season Season, start, end MonthDay) HoursDocument {
	out := doc.Clone()
	override, ok := out.Seasonal[season]
	if !ok {
		return out
	}
	override.UseDateRange = true
	override.StartDate = &start
	override.EndDate = &end
	out.Seasonal[season] = override
	return out
}

// SetSeasonDay configures one weekday inside a season window.
func SetSeasonDay(doc HoursDocument, season Season, day Weekday, dayHours DayHours) HoursDocument {
	out := doc.Clone()
	override, ok := out.Seasonal[season]
	if !ok {
		return out
	}
	if _, known := timeWeekday(day); !known {
		return out
	}
	if override.Days == nil {
		override.Days = make(map[Weekday]DayHours)
	}
	override.Days[day] = dayHours.clone()
	out.Seasonal[season] = override
	return out
}

// AddHoliday enables a catalog holiday, closed by default.
func AddHoliday(doc HoursDocument, id string) HoursDocument {
	out := doc.Clone()
	if !KnownHoliday(id) {
		return out
	}
	if out.Holidays == nil {
		out.Holidays = make(map[string]HolidayOverride)
	}
	if _, exists := out.Holidays[id]; !exists {
		out.Holidays[id] = HolidayOverride{Status: OverrideClosed}
	}
	return out
}

// SetHolidayStatus changes a configured holiday's status. Leaving modified
// clears the periods; entering modified keeps whatever periods the caller
// sets next.
func SetHolidayStatus(doc HoursDocument, id string, status OverrideStatus) HoursDocument {
	out := doc.Clone()
	override, ok := out.Holidays[id]
	if !ok || !validOverrideStatus(status) {
		return out
	}
	override.Status = status
	if status != OverrideModified {
		override.Periods = nil
	}
	out.Holidays[id] = override
	return out
}

// SetHolidayPeriods replaces a modified holiday's periods.
func SetHolidayPeriods(doc HoursDocument, id string, periods []Period) HoursDocument {
	out := doc.Clone()
	override, ok := out.Holidays[id]
	if !ok || override.Status != OverrideModified {
		return out
	}
	override.Periods = append([]Period(nil), periods...)
	out.Holidays[id] = override
	return out
}

// RemoveHoliday drops a holiday override.
func RemoveHoliday(doc HoursDocument, id string) HoursDocument {
	out := doc.Clone()
	delete(out.Holidays, id)
	return out
}

// AddException appends an exception to the list. Appending is what gives
// later entries their higher priority under the last-match-wins rule.
func AddException(doc HoursDocument, exc Exception) HoursDocument {
	out := doc.Clone()
	out.Exceptions = append(out.Exceptions, exc.clone())
	return out
}

// ExceptionPatch carries the fields of an exception to overwrite; nil
// fields are left untouched.
type ExceptionPatch struct {
	Date    *Date
	Pattern *RecurrencePattern
	Status  *OverrideStatus
	Reason  *string
	Periods *[]Period
}

// UpdateException applies a partial update to the exception at index.
func UpdateException(doc HoursDocument, index int, patch ExceptionPatch) HoursDocument {
	out := doc.Clone()
	if index < 0 || index >= len(out.Exceptions) {
		return out
	}
	exc := out.Exceptions[index]
	if patch.Date != nil {
		date := *patch.Date
		exc.Date = &date
	}
	if patch.Pattern != nil {
		pattern := *patch.Pattern
		exc.Pattern = &pattern
	}
	if patch.Status != nil {
		exc.Status = *patch.Status
	}
	if patch.Reason != nil {
		exc.Reason = *patch.Reason
	}
	if patch.Periods != nil {
		exc.Periods = append([]Period(nil), (*patch.Periods)...)
	}
	out.Exceptions[index] = exc
	return out
}

// RemoveException deletes the exception at index.
func RemoveException(doc HoursDocument, index int) HoursDocument {
	out := doc.Clone()
	if index < 0 || index >= len(out.Exceptions) {
		return out
	}
	out.Exceptions = append(out.Exceptions[:index], out.Exceptions[index+1:]...)
	return out
}
