package domain

import "time"

// Suggestion is a visitor-submitted correction awaiting editor review.
type Suggestion struct {
	ID          string
	POIID       string
	POIName     string
	POISlug     Slug
	Field       string
	Message     string
	ContactMail Email
	ClientIP    string
	SubmittedAt time.Time
}
