package domain

import (
	"time"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
)

// POI aggregates everything the console edits for a point of interest. The
// hours document is owned by the hours package and stored verbatim; the
// aggregate only decides when it may be replaced.
type POI struct {
	ID              string
	Name            string
	Slug            Slug
	Type            POIType
	Categories      CategoryList
	AmenityTags     AmenityTagList
	Address         string
	Area            string
	Coordinates     *hours.Coordinates
	Phone           Phone
	Email           Email
	WebsiteURL      URL
	PhotoURLs       PhotoURLList
	Description     string
	Hours           hours.HoursDocument
	SuggestionCount int
	LastSuggestedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Contact groups the reachable endpoints of a POI.
type Contact struct {
	Phone      Phone
	Email      Email
	WebsiteURL URL
}

func NewContact(phone, email, website string) (Contact, error) {
	p, err := NewPhone(phone)
	if err != nil {
		return Contact{}, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return Contact{}, err
	}
	w, err := NewURL(website)
	if err != nil {
		return Contact{}, err
	}
	return Contact{Phone: p, Email: e, WebsiteURL: w}, nil
}
