package hours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// TimeSpec kinds as they appear in the wire "type" field.
const (
	SpecFixed       = "fixed"
	SpecDawn        = "dawn"
	SpecDusk        = "dusk"
	SpecAppointment = "appointment"
	SpecCall        = "call"
)

// ErrGeoDataMissing is returned when a solar-relative time is evaluated for
// a POI without coordinates. Callers render a "time varies" fallback instead
// of failing the whole response.
var ErrGeoDataMissing = errors.New("solar time requires POI coordinates")

// ErrQualitativeTime is returned when a clock time is requested for an
// appointment-only or call-for-hours spec, which has no absolute time.
// Callers must branch on the spec kind before asking for a clock time.
var ErrQualitativeTime = errors.New("qualitative time spec has no clock time")

// Coordinates is the geographic position used for solar evaluation.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// TimeSpec is an open/close boundary: a fixed clock time, a solar event
// (dawn or dusk) with a minute offset, or a qualitative mode with no clock
// time at all. The zero-valued fields of the unused variants stay empty on
// the wire.
type TimeSpec struct {
	Type   string `json:"type" bson:"type"`
	Time   string `json:"time,omitempty" bson:"time,omitempty"`
	Offset int    `json:"offset,omitempty" bson:"offset,omitempty"`
}

// FixedTime builds a fixed clock-time spec from an HH:MM string.
func FixedTime(clock string) TimeSpec {
	return TimeSpec{Type: SpecFixed, Time: clock}
}

// SolarTime builds a dawn or dusk spec with a minute offset (may be
// negative).
func SolarTime(event string, offsetMinutes int) TimeSpec {
	return TimeSpec{Type: event, Offset: offsetMinutes}
}

// Qualitative builds an appointment or call spec.
func Qualitative(mode string) TimeSpec {
	return TimeSpec{Type: mode}
}

// IsSolar reports whether the spec is dawn- or dusk-relative.
func (s TimeSpec) IsSolar() bool {
	return s.Type == SpecDawn || s.Type == SpecDusk
}

// IsQualitative reports whether the spec has no absolute clock time.
func (s TimeSpec) IsQualitative() bool {
	return s.Type == SpecAppointment || s.Type == SpecCall
}

// Evaluate converts the spec into an absolute time on the given date.
// Solar specs need the POI's coordinates; qualitative specs always return
// ErrQualitativeTime.
func (s TimeSpec) Evaluate(date Date, loc *time.Location, coords *Coordinates) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	switch s.Type {
	case SpecFixed:
		minutes, err := parseClock(s.Time)
		if err != nil {
			return time.Time{}, err
		}
		return date.Time(loc).Add(time.Duration(minutes) * time.Minute), nil
	case SpecDawn, SpecDusk:
		if coords == nil {
			return time.Time{}, ErrGeoDataMissing
		}
		rise, set := sunrise.SunriseSunset(coords.Latitude, coords.Longitude, date.Year, date.Month, date.Day)
		base := rise
		if s.Type == SpecDusk {
			base = set
		}
		return base.In(loc).Add(time.Duration(s.Offset) * time.Minute), nil
	case SpecAppointment, SpecCall:
		return time.Time{}, ErrQualitativeTime
	default:
		return time.Time{}, fmt.Errorf("unknown time spec type %q", s.Type)
	}
}

// parseClock converts an HH:MM string into minutes from midnight.
func parseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format, expected HH:MM: %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour*60 + minute, nil
}

// Period is a single open/close interval within one day. Periods never span
// midnight; a business open 22:00-02:00 cannot be represented in this model.
type Period struct {
	Open  TimeSpec `json:"open" bson:"open"`
	Close TimeSpec `json:"close" bson:"close"`
	Note  string   `json:"note,omitempty" bson:"note,omitempty"`
}
