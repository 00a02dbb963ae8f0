package admin

import (
	"time"

	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
	"github.com/dkellner85/poi-console-services/api/internal/hours"
)

type adminPOIResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Slug            string              `json:"slug"`
	Type            string              `json:"type"`
	Categories      []string            `json:"categories"`
	AmenityTags     []string            `json:"amenityTags,omitempty"`
	Address         string              `json:"address,omitempty"`
	Area            string              `json:"area,omitempty"`
	Coordinates     *coordinatesPayload `json:"coordinates,omitempty"`
	Phone           string              `json:"phone,omitempty"`
	Email           string              `json:"email,omitempty"`
	WebsiteURL      string              `json:"websiteUrl,omitempty"`
	PhotoURLs       []string            `json:"photoUrls,omitempty"`
	Description     string              `json:"description,omitempty"`
	Hours           hours.HoursDocument `json:"hours"`
	SuggestionCount int                 `json:"suggestionCount"`
	LastSuggestedAt *time.Time          `json:"lastSuggestedAt,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type adminPOIListResponse struct {
	Items []adminPOIResponse `json:"items"`
}

type coordinatesPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type upsertPOIRequest struct {
	Name        string              `json:"name" validate:"required,max=200"`
	Slug        string              `json:"slug" validate:"required,max=100"`
	Type        string              `json:"type" validate:"required"`
	Categories  []string            `json:"categories" validate:"required,min=1"`
	AmenityTags []string            `json:"amenityTags"`
	Address     string              `json:"address" validate:"max=300"`
	Area        string              `json:"area" validate:"max=120"`
	Coordinates *coordinatesPayload `json:"coordinates"`
	Phone       string              `json:"phone"`
	Email       string              `json:"email"`
	WebsiteURL  string              `json:"websiteUrl"`
	PhotoURLs   []string            `json:"photoUrls"`
	Description string              `json:"description"`
}

type hoursValidationResponse struct {
	Errors []hours.FieldError `json:"errors"`
}

type adminSuggestionResponse struct {
	ID          string    `json:"id"`
	POIID       string    `json:"poiId"`
	POIName     string    `json:"poiName"`
	POISlug     string    `json:"poiSlug"`
	Field       string    `json:"field"`
	Message     string    `json:"message"`
	ContactMail string    `json:"contactMail,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type adminSuggestionListResponse struct {
	Items []adminSuggestionResponse `json:"items"`
}

type photoUploadURLRequest struct {
	ContentType string `json:"contentType" validate:"required"`
}

func adminPOIDomainToResponse(poi admindomain.POI) adminPOIResponse {
	resp := adminPOIResponse{
		ID:              poi.ID,
		Name:            poi.Name,
		Slug:            poi.Slug.String(),
		Type:            poi.Type.String(),
		Categories:      poi.Categories.Strings(),
		AmenityTags:     poi.AmenityTags.Strings(),
		Address:         poi.Address,
		Area:            poi.Area,
		Phone:           poi.Phone.String(),
		Email:           poi.Email.String(),
		WebsiteURL:      poi.WebsiteURL.String(),
		PhotoURLs:       poi.PhotoURLs.Strings(),
		Description:     poi.Description,
		Hours:           poi.Hours,
		SuggestionCount: poi.SuggestionCount,
		LastSuggestedAt: poi.LastSuggestedAt,
		CreatedAt:       poi.CreatedAt,
		UpdatedAt:       poi.UpdatedAt,
	}
	if poi.Coordinates != nil {
		resp.Coordinates = &coordinatesPayload{
			Latitude:  poi.Coordinates.Latitude,
			Longitude: poi.Coordinates.Longitude,
		}
	}
	return resp
}

func adminSuggestionDomainToResponse(suggestion admindomain.Suggestion) adminSuggestionResponse {
	return adminSuggestionResponse{
		ID:          suggestion.ID,
		POIID:       suggestion.POIID,
		POIName:     suggestion.POIName,
		POISlug:     suggestion.POISlug.String(),
		Field:       suggestion.Field,
		Message:     suggestion.Message,
		ContactMail: suggestion.ContactMail.String(),
		SubmittedAt: suggestion.SubmittedAt,
	}
}
