package mongo

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
)

// POIStatsDocument is the stats sub-document embedded in a POI.
type POIStatsDocument struct {
	SuggestionCount int        `bson:"suggestionCount"`
	LastSuggestedAt *time.Time `bson:"lastSuggestedAt,omitempty"`
}

// CoordinatesDocument stores the geographic position of a POI.
type CoordinatesDocument struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

// POIDocument is the MongoDB schema of a POI. The hours document is stored
// as an opaque sub-document in its wire shape, so the stored form and the
// API form never drift apart.
type POIDocument struct {
	ID          primitive.ObjectID   `bson:"_id"`
	Name        string               `bson:"name"`
	Slug        string               `bson:"slug"`
	Type        string               `bson:"type"`
	Categories  []string             `bson:"categories,omitempty"`
	AmenityTags []string             `bson:"amenityTags,omitempty"`
	Address     string               `bson:"address,omitempty"`
	Area        string               `bson:"area,omitempty"`
	Coordinates *CoordinatesDocument `bson:"coordinates,omitempty"`
	Phone       string               `bson:"phone,omitempty"`
	Email       string               `bson:"email,omitempty"`
	WebsiteURL  string               `bson:"websiteURL,omitempty"`
	PhotoURLs   []string             `bson:"photoURLs,omitempty"`
	Description string               `bson:"description,omitempty"`
	Hours       bson.M               `bson:"hours,omitempty"`
	Stats       POIStatsDocument     `bson:"stats"`
	CreatedAt   *time.Time           `bson:"createdAt,omitempty"`
	UpdatedAt   *time.Time           `bson:"updatedAt,omitempty"`
}

// SuggestionDocument is the MongoDB schema of a visitor suggestion.
type SuggestionDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	POIID       primitive.ObjectID `bson:"poiId"`
	POIName     string             `bson:"poiName"`
	POISlug     string             `bson:"poiSlug"`
	Field       string             `bson:"field"`
	Message     string             `bson:"message"`
	ContactMail string             `bson:"contactMail,omitempty"`
	ClientIP    string             `bson:"clientIp,omitempty"`
	SubmittedAt time.Time          `bson:"submittedAt"`
}

// encodeHoursDocument converts the hours document into its JSON wire shape
// and re-reads it as a generic BSON map.
func encodeHoursDocument(doc hours.HoursDocument) (bson.M, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode hours document: %w", err)
	}
	var raw bson.M
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("encode hours document: %w", err)
	}
	return raw, nil
}

// decodeHoursDocument is the inverse of encodeHoursDocument. A missing blob
// decodes to the default document so legacy records stay readable.
func decodeHoursDocument(raw bson.M) (hours.HoursDocument, error) {
	if raw == nil {
		return hours.DefaultDocument("UTC"), nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return hours.HoursDocument{}, fmt.Errorf("decode hours document: %w", err)
	}
	var doc hours.HoursDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return hours.HoursDocument{}, fmt.Errorf("decode hours document: %w", err)
	}
	return doc, nil
}
