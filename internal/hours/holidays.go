package hours

import "time"

// HolidayRule computes the calendar date a named holiday falls on in a
// given year. Rules come in three kinds: a fixed month-day, the Nth (or
// last) weekday of a month, and a relative computation anchored on another
// holiday (day after Thanksgiving, Easter-relative).
type HolidayRule struct {
	ID    string
	Label string

	fixed      *MonthDay
	nthOrdinal string
	nthWeekday Weekday
	nthMonth   time.Month
	relativeTo string
	offsetDays int
	easter     bool
}

// HolidayCatalog is the fixed set of named holidays an editor can override,
// in declaration order. When two holidays resolve to the same date the
// first one listed here wins.
var HolidayCatalog = []HolidayRule{
	{ID: "newYearsDay", Label: "New Year's Day", fixed: &MonthDay{time.January, 1}},
	{ID: "mlkDay", Label: "Martin Luther King Jr. Day", nthOrdinal: OrdinalThird, nthWeekday: Monday, nthMonth: time.January},
	{ID: "presidentsDay", Label: "Presidents' Day", nthOrdinal: OrdinalThird, nthWeekday: Monday, nthMonth: time.February},
	{ID: "goodFriday", Label: "Good Friday", relativeTo: "easter", offsetDays: -2},
	{ID: "easter", Label: "Easter Sunday", easter: true},
	{ID: "easterMonday", Label: "Easter Monday", relativeTo: "easter", offsetDays: 1},
	{ID: "mothersDay", Label: "Mother's Day", nthOrdinal: OrdinalSecond, nthWeekday: Sunday, nthMonth: time.May},
	{ID: "memorialDay", Label: "Memorial Day", nthOrdinal: OrdinalLast, nthWeekday: Monday, nthMonth: time.May},
	{ID: "fathersDay", Label: "Father's Day", nthOrdinal: OrdinalThird, nthWeekday: Sunday, nthMonth: time.June},
	{ID: "juneteenth", Label: "Juneteenth", fixed: &MonthDay{time.June, 19}},
	{ID: "independenceDay", Label: "Independence Day", fixed: &MonthDay{time.July, 4}},
	{ID: "laborDay", Label: "Labor Day", nthOrdinal: OrdinalFirst, nthWeekday: Monday, nthMonth: time.September},
	{ID: "columbusDay", Label: "Columbus Day", nthOrdinal: OrdinalSecond, nthWeekday: Monday, nthMonth: time.October},
	{ID: "halloween", Label: "Halloween", fixed: &MonthDay{time.October, 31}},
	{ID: "veteransDay", Label: "Veterans Day", fixed: &MonthDay{time.November, 11}},
	{ID: "thanksgiving", Label: "Thanksgiving", nthOrdinal: OrdinalFourth, nthWeekday: Thursday, nthMonth: time.November},
	{ID: "dayAfterThanksgiving", Label: "Day After Thanksgiving", relativeTo: "thanksgiving", offsetDays: 1},
	{ID: "christmasEve", Label: "Christmas Eve", fixed: &MonthDay{time.December, 24}},
	{ID: "christmasDay", Label: "Christmas Day", fixed: &MonthDay{time.December, 25}},
	{ID: "newYearsEve", Label: "New Year's Eve", fixed: &MonthDay{time.December, 31}},
}

var holidayByID = func() map[string]HolidayRule {
	m := make(map[string]HolidayRule, len(HolidayCatalog))
	for _, rule := range HolidayCatalog {
		m[rule.ID] = rule
	}
	return m
}()

// KnownHoliday reports whether id names a catalog holiday.
func KnownHoliday(id string) bool {
	_, ok := holidayByID[id]
	return ok
}

// HolidayDate resolves the holiday's calendar date for the given year.
// The second return is false for ids outside the catalog.
func HolidayDate(id string, year int) (Date, bool) {
	rule, ok := holidayByID[id]
	if !ok {
		return Date{}, false
	}
	return rule.DateIn(year), true
}

// DateIn computes the rule's date for a year.
func (r HolidayRule) DateIn(year int) Date {
	switch {
	case r.easter:
		return easterSunday(year)
	case r.fixed != nil:
		return Date{Year: year, Month: r.fixed.Month, Day: r.fixed.Day}
	case r.relativeTo != "":
		base := holidayByID[r.relativeTo]
		return base.DateIn(year).AddDays(r.offsetDays)
	default:
		return nthWeekdayOfMonth(year, r.nthMonth, r.nthWeekday, r.nthOrdinal)
	}
}

// nthWeekdayOfMonth finds the Nth (or last) occurrence of a weekday within
// a month.
func nthWeekdayOfMonth(year int, month time.Month, weekday Weekday, ordinal string) Date {
	target, _ := timeWeekday(weekday)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(target) - int(first.Weekday()) + 7) % 7
	day := 1 + offset
	if ordinal == OrdinalLast {
		for day+7 <= daysInMonth(year, month) {
			day += 7
		}
		return Date{Year: year, Month: month, Day: day}
	}
	rank := ordinalRank[ordinal]
	return Date{Year: year, Month: month, Day: day + (rank-1)*7}
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// easterSunday computes Gregorian Easter with the anonymous computus.
func easterSunday(year int) Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return Date{Year: year, Month: time.Month(month), Day: day}
}
