package domain

import "time"

// Suggestion is a visitor-submitted correction for a POI, as accepted by the
// public API before it lands in the editor inbox.
type Suggestion struct {
	ID          string
	POIID       string
	POIName     string
	POISlug     string
	Field       string
	Message     string
	ContactMail string
	ClientIP    string
	SubmittedAt time.Time
}
