package hours

import "fmt"

// Provenance names the precedence layer that produced a resolved day.
type Provenance string

const (
	ProvenanceException Provenance = "exception"
	ProvenanceHoliday   Provenance = "holiday"
	ProvenanceSeasonal  Provenance = "seasonal"
	ProvenanceRegular   Provenance = "regular"
)

// DiagnosticAmbiguousOverride flags a date matched by more than one entry
// of the same layer. The resolver still answers deterministically; the
// diagnostic exists so operators can clean up the configuration.
const DiagnosticAmbiguousOverride = "ambiguous_override"

// Diagnostic is a non-fatal observation made while resolving.
type Diagnostic struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Resolution is the effective hours for one date plus where they came from.
type Resolution struct {
	Date        Date         `json:"date"`
	Hours       DayHours     `json:"hours"`
	Provenance  Provenance   `json:"provenance"`
	Source      string       `json:"source,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Resolve determines the effective hours for the target date by applying
// the fixed precedence order: exceptions, then holidays, then seasonal
// overrides, then regular hours. It never fails on a validated document;
// ambiguous configurations resolve deterministically and surface a
// diagnostic instead of an error.
//
// Tie-breaks, in layer order:
//   - exceptions: the last matching entry in the list wins
//   - holidays: the first match in catalog declaration order wins
//   - seasons: the first match in spring, summer, fall, winter order wins
func Resolve(doc HoursDocument, date Date) Resolution {
	res := Resolution{Date: date}
	weekday := date.Weekday()

	// Exceptions: scan the whole list so collisions can be diagnosed;
	// keep the last match.
	matched := -1
	for i, exc := range doc.Exceptions {
		if !exc.Matches(date) {
			continue
		}
		if matched >= 0 {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:    DiagnosticAmbiguousOverride,
				Message: fmt.Sprintf("exceptions %d and %d both match %s; keeping %d", matched, i, date, i),
			})
		}
		matched = i
	}
	if matched >= 0 {
		exc := doc.Exceptions[matched]
		res.Hours = applyOverride(doc, date, weekday, exc.Status, exc.Periods)
		res.Provenance = ProvenanceException
		res.Source = exc.Reason
		return res
	}

	// Holidays: walk the catalog in declaration order so the tie-break is
	// stable regardless of map iteration.
	holidayMatched := false
	for _, rule := range HolidayCatalog {
		override, configured := doc.Holidays[rule.ID]
		if !configured || rule.DateIn(date.Year) != date {
			continue
		}
		if holidayMatched {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:    DiagnosticAmbiguousOverride,
				Message: fmt.Sprintf("holiday %s also falls on %s; keeping the earlier catalog entry", rule.ID, date),
			})
			continue
		}
		holidayMatched = true
		res.Hours = applyOverride(doc, date, weekday, override.Status, override.Periods)
		res.Provenance = ProvenanceHoliday
		res.Source = rule.ID
	}
	if holidayMatched {
		return res
	}

	// Seasonal: first season in declaration order whose window covers the
	// date. A season that covers the date but does not configure the
	// target weekday falls through to regular hours.
	var matchedSeason Season
	seasonMatched := false
	for _, season := range Seasons {
		override, configured := doc.Seasonal[season]
		if !configured || !override.inWindow(season, date) {
			continue
		}
		if seasonMatched {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:    DiagnosticAmbiguousOverride,
				Message: fmt.Sprintf("seasons %s and %s both cover %s; keeping %s", matchedSeason, season, date, matchedSeason),
			})
			continue
		}
		seasonMatched = true
		matchedSeason = season
	}
	if seasonMatched {
		if dayHours, configured := doc.Seasonal[matchedSeason].Days[weekday]; configured {
			res.Hours = dayHours.clone()
			res.Provenance = ProvenanceSeasonal
			res.Source = string(matchedSeason)
			return res
		}
	}

	res.Hours = doc.Regular[weekday].clone()
	res.Provenance = ProvenanceRegular
	return res
}

// applyOverride turns an override status into concrete day hours. "closed"
// closes the day, "modified" opens it with the override's periods, and
// "open" means open as usual: the hours the seasonal/regular layers would
// have produced, attributed to the override.
func applyOverride(doc HoursDocument, date Date, weekday Weekday, status OverrideStatus, periods []Period) DayHours {
	switch status {
	case OverrideClosed:
		return Closed()
	case OverrideModified:
		return DayHours{Status: StatusOpen, Periods: append([]Period(nil), periods...)}
	default:
		return baseHours(doc, date, weekday)
	}
}

// baseHours resolves only the seasonal and regular layers, used when an
// override declares the POI open as usual.
func baseHours(doc HoursDocument, date Date, weekday Weekday) DayHours {
	for _, season := range Seasons {
		override, configured := doc.Seasonal[season]
		if !configured || !override.inWindow(season, date) {
			continue
		}
		if dayHours, ok := override.Days[weekday]; ok {
			return dayHours.clone()
		}
		break
	}
	return doc.Regular[weekday].clone()
}
