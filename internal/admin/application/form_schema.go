package application

import (
	"fmt"

	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
)

// FormField is one input of an editor form section.
type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Required bool   `json:"required"`
}

// FormSection is an ordered group of fields the console renders as one card.
type FormSection struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Fields []FormField `json:"fields"`
}

// formSections holds every section the console can render, keyed by id.
var formSections = map[string]FormSection{
	"identity": {
		ID:    "identity",
		Title: "Identity",
		Fields: []FormField{
			{Name: "name", Label: "Name", Kind: "text", Required: true},
			{Name: "slug", Label: "Slug", Kind: "slug", Required: true},
			{Name: "description", Label: "Description", Kind: "textarea"},
		},
	},
	"location": {
		ID:    "location",
		Title: "Location",
		Fields: []FormField{
			{Name: "address", Label: "Address", Kind: "text"},
			{Name: "area", Label: "Area", Kind: "text", Required: true},
			{Name: "coordinates", Label: "Coordinates", Kind: "latlng"},
		},
	},
	"contact": {
		ID:    "contact",
		Title: "Contact",
		Fields: []FormField{
			{Name: "phone", Label: "Phone", Kind: "tel"},
			{Name: "email", Label: "Email", Kind: "email"},
			{Name: "websiteUrl", Label: "Website", Kind: "url"},
		},
	},
	"classification": {
		ID:    "classification",
		Title: "Classification",
		Fields: []FormField{
			{Name: "categories", Label: "Categories", Kind: "multi-select", Required: true},
			{Name: "amenityTags", Label: "Amenities", Kind: "multi-select"},
		},
	},
	"photos": {
		ID:    "photos",
		Title: "Photos",
		Fields: []FormField{
			{Name: "photoUrls", Label: "Gallery", Kind: "photo-gallery"},
		},
	},
	"hours": {
		ID:    "hours",
		Title: "Hours of operation",
		Fields: []FormField{
			{Name: "hours", Label: "Hours", Kind: "hours-editor", Required: true},
		},
	},
	"trail": {
		ID:    "trail",
		Title: "Trail details",
		Fields: []FormField{
			{Name: "trailLengthKm", Label: "Length (km)", Kind: "number"},
			{Name: "difficulty", Label: "Difficulty", Kind: "select"},
		},
	},
	"event": {
		ID:    "event",
		Title: "Event details",
		Fields: []FormField{
			{Name: "eventStart", Label: "Starts", Kind: "date"},
			{Name: "eventEnd", Label: "Ends", Kind: "date"},
			{Name: "ticketUrl", Label: "Tickets", Kind: "url"},
		},
	},
}

// sectionOrder lists the section ids each POI type renders, in display
// order. Replacing the old conditional assembly with a table keeps every
// variant visible in one place.
var sectionOrder = map[admindomain.POIType][]string{
	"business": {"identity", "location", "contact", "classification", "hours", "photos"},
	"park":     {"identity", "location", "classification", "hours", "photos"},
	"trail":    {"identity", "location", "trail", "classification", "hours", "photos"},
	"event":    {"identity", "location", "event", "contact", "classification", "hours", "photos"},
}

// FormSchema returns the ordered form sections for a POI type.
func FormSchema(poiType admindomain.POIType) ([]FormSection, error) {
	ids, ok := sectionOrder[poiType]
	if !ok {
		return nil, fmt.Errorf("unknown poi type: %s", poiType)
	}
	sections := make([]FormSection, 0, len(ids))
	for _, id := range ids {
		section, ok := formSections[id]
		if !ok {
			return nil, fmt.Errorf("form section %q is not defined", id)
		}
		sections = append(sections, section)
	}
	return sections, nil
}
