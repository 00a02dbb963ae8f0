package hours

// Season keys in declaration order. The order doubles as the tie-break for
// dates that fall inside more than one configured season window: the first
// listed season wins.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
	Winter Season = "winter"
)

// Seasons lists the fixed season set in tie-break order.
var Seasons = []Season{Spring, Summer, Fall, Winter}

// seasonMonths are the fixed calendar months used when a season does not
// carry an explicit date range.
var seasonMonths = map[Season][]int{
	Spring: {3, 4, 5},
	Summer: {6, 7, 8},
	Fall:   {9, 10, 11},
	Winter: {12, 1, 2},
}

// OverrideStatus classifies a holiday override or exception: open as usual,
// closed, or open with modified periods.
type OverrideStatus string

const (
	OverrideOpen     OverrideStatus = "open"
	OverrideClosed   OverrideStatus = "closed"
	OverrideModified OverrideStatus = "modified"
)

func validOverrideStatus(s OverrideStatus) bool {
	switch s {
	case OverrideOpen, OverrideClosed, OverrideModified:
		return true
	}
	return false
}

// RegularHours maps every weekday to its configured hours. All seven keys
// must be present; a document missing one is rejected by the validator.
type RegularHours map[Weekday]DayHours

// SeasonalOverride replaces configured weekdays while the season is in
// effect. Weekdays not present in Days fall through to the regular hours
// even inside the season window; that fallthrough is deliberate and load
// bearing for editors that only override a weekend.
type SeasonalOverride struct {
	UseDateRange bool                 `json:"useDateRange"`
	StartDate    *MonthDay            `json:"startDate,omitempty"`
	EndDate      *MonthDay            `json:"endDate,omitempty"`
	Days         map[Weekday]DayHours `json:"days,omitempty"`
}

// HolidayOverride applies to the single calendar date its holiday resolves
// to in the queried year.
type HolidayOverride struct {
	Status  OverrideStatus `json:"status"`
	Periods []Period       `json:"periods,omitempty"`
}

// Exception kinds as they appear in the wire "type" field.
const (
	ExceptionOneTime   = "one-time"
	ExceptionRecurring = "recurring"
)

// Recurrence ordinals.
const (
	OrdinalFirst  = "first"
	OrdinalSecond = "second"
	OrdinalThird  = "third"
	OrdinalFourth = "fourth"
	OrdinalLast   = "last"
)

var ordinalRank = map[string]int{
	OrdinalFirst:  1,
	OrdinalSecond: 2,
	OrdinalThird:  3,
	OrdinalFourth: 4,
}

// RecurrencePattern matches "the Nth (or last) occurrence of a weekday",
// optionally restricted to a set of months. An empty month set matches all
// twelve months.
type RecurrencePattern struct {
	Ordinal   string  `json:"ordinal"`
	DayOfWeek Weekday `json:"dayOfWeek"`
	Months    []int   `json:"months"`
}

// Matches reports whether the pattern covers the given date.
func (p RecurrencePattern) Matches(date Date) bool {
	if date.Weekday() != p.DayOfWeek {
		return false
	}
	if len(p.Months) > 0 {
		found := false
		for _, m := range p.Months {
			if m == int(date.Month) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if p.Ordinal == OrdinalLast {
		return date.isLastWeekdayOfMonth()
	}
	rank, ok := ordinalRank[p.Ordinal]
	return ok && date.weekdayOrdinal() == rank
}

// Exception is a one-time or recurring override, the highest-precedence
// layer of the document. When several exceptions match the same date the
// last matching entry in the list wins, consistent with the append /
// overwrite editing of the exception list.
type Exception struct {
	Type    string             `json:"type"`
	Date    *Date              `json:"date,omitempty"`
	Pattern *RecurrencePattern `json:"pattern,omitempty"`
	Status  OverrideStatus     `json:"status"`
	Reason  string             `json:"reason,omitempty"`
	Periods []Period           `json:"periods,omitempty"`
}

// Matches reports whether the exception covers the given date.
func (e Exception) Matches(date Date) bool {
	switch e.Type {
	case ExceptionOneTime:
		return e.Date != nil && *e.Date == date
	case ExceptionRecurring:
		return e.Pattern != nil && e.Pattern.Matches(date)
	}
	return false
}

// HoursDocument is the aggregate hours value for one POI. It is created
// with defaults when the POI is created, mutated only through editor
// actions, and persisted wholesale under the POI's "hours" field.
type HoursDocument struct {
	Regular    RegularHours                `json:"regular"`
	Seasonal   map[Season]SeasonalOverride `json:"seasonal,omitempty"`
	Holidays   map[string]HolidayOverride  `json:"holidays,omitempty"`
	Exceptions []Exception                 `json:"exceptions,omitempty"`
	Timezone   string                      `json:"timezone"`
	Notes      string                      `json:"notes,omitempty"`
}

// DefaultDocument returns the hours assigned to a freshly created POI:
// every weekday open 09:00-17:00, no overrides.
func DefaultDocument(timezone string) HoursDocument {
	regular := make(RegularHours, len(Weekdays))
	for _, day := range Weekdays {
		regular[day] = DefaultDayHours()
	}
	return HoursDocument{Regular: regular, Timezone: timezone}
}

// Clone returns a deep copy. Editor actions never mutate their input.
func (d HoursDocument) Clone() HoursDocument {
	out := HoursDocument{Timezone: d.Timezone, Notes: d.Notes}
	if d.Regular != nil {
		out.Regular = make(RegularHours, len(d.Regular))
		for day, dh := range d.Regular {
			out.Regular[day] = dh.clone()
		}
	}
	if d.Seasonal != nil {
		out.Seasonal = make(map[Season]SeasonalOverride, len(d.Seasonal))
		for season, override := range d.Seasonal {
			out.Seasonal[season] = override.clone()
		}
	}
	if d.Holidays != nil {
		out.Holidays = make(map[string]HolidayOverride, len(d.Holidays))
		for id, override := range d.Holidays {
			out.Holidays[id] = override.clone()
		}
	}
	if d.Exceptions != nil {
		out.Exceptions = make([]Exception, len(d.Exceptions))
		for i, exc := range d.Exceptions {
			out.Exceptions[i] = exc.clone()
		}
	}
	return out
}

func (o SeasonalOverride) clone() SeasonalOverride {
	out := SeasonalOverride{UseDateRange: o.UseDateRange}
	if o.StartDate != nil {
		start := *o.StartDate
		out.StartDate = &start
	}
	if o.EndDate != nil {
		end := *o.EndDate
		out.EndDate = &end
	}
	if o.Days != nil {
		out.Days = make(map[Weekday]DayHours, len(o.Days))
		for day, dh := range o.Days {
			out.Days[day] = dh.clone()
		}
	}
	return out
}

func (o HolidayOverride) clone() HolidayOverride {
	out := HolidayOverride{Status: o.Status}
	if o.Periods != nil {
		out.Periods = append([]Period(nil), o.Periods...)
	}
	return out
}

func (e Exception) clone() Exception {
	out := Exception{Type: e.Type, Status: e.Status, Reason: e.Reason}
	if e.Date != nil {
		date := *e.Date
		out.Date = &date
	}
	if e.Pattern != nil {
		pattern := RecurrencePattern{Ordinal: e.Pattern.Ordinal, DayOfWeek: e.Pattern.DayOfWeek}
		if e.Pattern.Months != nil {
			pattern.Months = append([]int(nil), e.Pattern.Months...)
		}
		out.Pattern = &pattern
	}
	if e.Periods != nil {
		out.Periods = append([]Period(nil), e.Periods...)
	}
	return out
}

// inSeasonWindow reports whether the date falls inside the season's window:
// its fixed calendar months, or the annually recurring [start, end]
// month-day interval when UseDateRange is set. Ranges may wrap the year
// boundary (for example Nov 15 through Feb 15).
func (o SeasonalOverride) inWindow(season Season, date Date) bool {
	if o.UseDateRange {
		if o.StartDate == nil || o.EndDate == nil {
			return false
		}
		point := MonthDay{Month: date.Month, Day: date.Day}
		return monthDayInRange(point, *o.StartDate, *o.EndDate)
	}
	for _, m := range seasonMonths[season] {
		if m == int(date.Month) {
			return true
		}
	}
	return false
}

// monthDayInRange checks the closed interval [start, end] on the recurring
// annual calendar, including windows that cross the year boundary.
func monthDayInRange(point, start, end MonthDay) bool {
	p := int(point.Month)*100 + point.Day
	s := int(start.Month)*100 + start.Day
	e := int(end.Month)*100 + end.Day
	if s <= e {
		return p >= s && p <= e
	}
	return p >= s || p <= e
}
