package domain

import (
	"time"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
)

// POI is the publicly visible read model of a point of interest.
type POI struct {
	ID          string
	Name        string
	Slug        string
	Type        string
	Categories  []string
	AmenityTags []string
	Address     string
	Area        string
	Coordinates *hours.Coordinates
	Phone       string
	Email       string
	WebsiteURL  string
	PhotoURLs   []string
	Description string
	Hours       hours.HoursDocument
	Stats       POIStats
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// POIStats aggregates visitor-facing counters.
type POIStats struct {
	SuggestionCount int
	LastSuggestedAt *time.Time
}
