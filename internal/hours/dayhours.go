// Package hours implements the hours-of-operation model for points of
// interest: regular weekly hours, seasonal and holiday overrides, one-time
// and recurring exceptions, and the resolver that computes the effective
// hours for a calendar date. Everything here is pure and side-effect free;
// documents are persisted and exchanged in the JSON shape produced by this
// package, verbatim.
package hours

import "time"

// Weekday is a lowercase weekday key as it appears on the wire.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists all seven keys in Monday-first order. Regular hours must
// carry an entry for every one of them.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func weekdayFromTime(wd time.Weekday) Weekday {
	switch wd {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

func timeWeekday(wd Weekday) (time.Weekday, bool) {
	switch wd {
	case Monday:
		return time.Monday, true
	case Tuesday:
		return time.Tuesday, true
	case Wednesday:
		return time.Wednesday, true
	case Thursday:
		return time.Thursday, true
	case Friday:
		return time.Friday, true
	case Saturday:
		return time.Saturday, true
	case Sunday:
		return time.Sunday, true
	}
	return 0, false
}

// DayStatus classifies a whole day's hours.
type DayStatus string

const (
	StatusOpen            DayStatus = "open"
	StatusClosed          DayStatus = "closed"
	StatusTwentyFourHours DayStatus = "24hours"
	StatusAppointmentOnly DayStatus = "appointment"
)

func validDayStatus(s DayStatus) bool {
	switch s {
	case StatusOpen, StatusClosed, StatusTwentyFourHours, StatusAppointmentOnly:
		return true
	}
	return false
}

// DayHours is one day's resolved or configured hours. Periods must be empty
// unless the status is open, in which case at least one period is required
// (several model lunch-break splits).
type DayHours struct {
	Status  DayStatus `json:"status"`
	Periods []Period  `json:"periods,omitempty"`
}

// Closed returns a closed day.
func Closed() DayHours {
	return DayHours{Status: StatusClosed}
}

// OpenAllDay returns a 24-hours day.
func OpenAllDay() DayHours {
	return DayHours{Status: StatusTwentyFourHours}
}

// DefaultDayHours is the editor default for a freshly created POI: open
// 09:00 to 17:00.
func DefaultDayHours() DayHours {
	return DayHours{
		Status:  StatusOpen,
		Periods: []Period{{Open: FixedTime("09:00"), Close: FixedTime("17:00")}},
	}
}

func (dh DayHours) clone() DayHours {
	out := DayHours{Status: dh.Status}
	if dh.Periods != nil {
		out.Periods = append([]Period(nil), dh.Periods...)
	}
	return out
}
