package public

import (
	"time"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
	"github.com/dkellner85/poi-console-services/api/internal/public/domain"
)

type coordinatesPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type poiSummaryResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Type        string              `json:"type"`
	Categories  []string            `json:"categories"`
	AmenityTags []string            `json:"amenityTags,omitempty"`
	Area        string              `json:"area,omitempty"`
	Coordinates *coordinatesPayload `json:"coordinates,omitempty"`
	PhotoURL    string              `json:"photoUrl,omitempty"`
}

type poiListResponse struct {
	Items []poiSummaryResponse `json:"items"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
	Total int                  `json:"total"`
}

type poiDetailResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Type        string              `json:"type"`
	Categories  []string            `json:"categories"`
	AmenityTags []string            `json:"amenityTags,omitempty"`
	Address     string              `json:"address,omitempty"`
	Area        string              `json:"area,omitempty"`
	Coordinates *coordinatesPayload `json:"coordinates,omitempty"`
	Phone       string              `json:"phone,omitempty"`
	Email       string              `json:"email,omitempty"`
	WebsiteURL  string              `json:"websiteUrl,omitempty"`
	PhotoURLs   []string            `json:"photoUrls,omitempty"`
	Description string              `json:"description,omitempty"`
	Hours       hours.HoursDocument `json:"hours"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type suggestionCreateRequest struct {
	Field       string `json:"field"`
	Message     string `json:"message"`
	ContactMail string `json:"contactMail"`
}

type suggestionCreateResponse struct {
	ID          string    `json:"id"`
	POISlug     string    `json:"poiSlug"`
	Field       string    `json:"field"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func buildPOISummaryResponse(poi domain.POI) poiSummaryResponse {
	resp := poiSummaryResponse{
		ID:          poi.ID,
		Name:        poi.Name,
		Slug:        poi.Slug,
		Type:        poi.Type,
		Categories:  append([]string{}, poi.Categories...),
		AmenityTags: append([]string{}, poi.AmenityTags...),
		Area:        poi.Area,
		Coordinates: buildCoordinatesPayload(poi.Coordinates),
	}
	if len(poi.PhotoURLs) > 0 {
		resp.PhotoURL = poi.PhotoURLs[0]
	}
	return resp
}

func poiDomainToDetailResponse(poi domain.POI) poiDetailResponse {
	return poiDetailResponse{
		ID:          poi.ID,
		Name:        poi.Name,
		Slug:        poi.Slug,
		Type:        poi.Type,
		Categories:  append([]string{}, poi.Categories...),
		AmenityTags: append([]string{}, poi.AmenityTags...),
		Address:     poi.Address,
		Area:        poi.Area,
		Coordinates: buildCoordinatesPayload(poi.Coordinates),
		Phone:       poi.Phone,
		Email:       poi.Email,
		WebsiteURL:  poi.WebsiteURL,
		PhotoURLs:   append([]string{}, poi.PhotoURLs...),
		Description: poi.Description,
		Hours:       poi.Hours,
		UpdatedAt:   poi.UpdatedAt,
	}
}

func buildCoordinatesPayload(coords *hours.Coordinates) *coordinatesPayload {
	if coords == nil {
		return nil
	}
	return &coordinatesPayload{Latitude: coords.Latitude, Longitude: coords.Longitude}
}
