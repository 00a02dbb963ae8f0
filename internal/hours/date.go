package hours

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time component. Resolution happens on
// whole dates, so a comparable value type keeps the resolver free of clock
// and zone concerns.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalises the given components through the calendar, so
// out-of-range inputs roll over the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf extracts the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate reads a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero value, used as "no date given".
func (d Date) IsZero() bool {
	return d == (Date{})
}

// Time returns midnight of the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the weekday key for the date.
func (d Date) Weekday() Weekday {
	return weekdayFromTime(d.Time(time.UTC).Weekday())
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as "YYYY-MM-DD", the wire format the backend
// stores verbatim.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date must be a JSON string")
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MonthDay is an annually recurring calendar day ("MM-DD" on the wire),
// used for seasonal date-range windows.
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay reads an "MM-DD" string.
func ParseMonthDay(value string) (MonthDay, error) {
	t, err := time.Parse("01-02", value)
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: %w", value, err)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// MarshalJSON encodes the value as "MM-DD".
func (md MonthDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + md.String() + `"`), nil
}

// UnmarshalJSON decodes an "MM-DD" string.
func (md *MonthDay) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("month-day must be a JSON string")
	}
	parsed, err := ParseMonthDay(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}

// ordinal position of the date's weekday within its month: 1 for the first
// occurrence, 2 for the second, and so on.
func (d Date) weekdayOrdinal() int {
	return (d.Day-1)/7 + 1
}

// isLastWeekdayOfMonth reports whether no later date in the same month
// shares the date's weekday.
func (d Date) isLastWeekdayOfMonth() bool {
	next := d.AddDays(7)
	return next.Month != d.Month
}
