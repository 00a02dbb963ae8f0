package admin

import (
	"fmt"
	"strings"
	"unicode/utf8"

	adminapp "github.com/dkellner85/poi-console-services/api/internal/admin/application"
	"github.com/dkellner85/poi-console-services/api/internal/interfaces/http/common"
)

// buildPOICommand normalises a request payload into the application command.
// Taxonomy checks happen here so the service layer only sees clean input.
func (h *Handler) buildPOICommand(req upsertPOIRequest) (adminapp.UpsertPOICommand, error) {
	if err := h.validate.Struct(req); err != nil {
		return adminapp.UpsertPOICommand{}, err
	}

	poiType, err := common.NormalizePOIType(req.Type)
	if err != nil {
		return adminapp.UpsertPOICommand{}, err
	}
	if poiType == "" {
		return adminapp.UpsertPOICommand{}, fmt.Errorf("poi type is required")
	}

	categories, err := common.NormalizeCategoryList(req.Categories)
	if err != nil {
		return adminapp.UpsertPOICommand{}, err
	}

	tags, err := common.NormalizeAmenityTags(req.AmenityTags)
	if err != nil {
		return adminapp.UpsertPOICommand{}, err
	}

	photos, err := normalizePhotoURLs(req.PhotoURLs, common.MaxPOIPhotoCount)
	if err != nil {
		return adminapp.UpsertPOICommand{}, err
	}

	description := strings.TrimSpace(req.Description)
	if utf8.RuneCountInString(description) > common.MaxDescriptionRunes {
		return adminapp.UpsertPOICommand{}, fmt.Errorf("description must be at most %d characters", common.MaxDescriptionRunes)
	}

	cmd := adminapp.UpsertPOICommand{
		Name:        strings.TrimSpace(req.Name),
		Slug:        strings.TrimSpace(req.Slug),
		Type:        poiType,
		Categories:  categories,
		AmenityTags: tags,
		Address:     strings.TrimSpace(req.Address),
		Area:        strings.TrimSpace(req.Area),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
		WebsiteURL:  strings.TrimSpace(req.WebsiteURL),
		PhotoURLs:   photos,
		Description: description,
	}
	if req.Coordinates != nil {
		lat := req.Coordinates.Latitude
		lng := req.Coordinates.Longitude
		cmd.Latitude = &lat
		cmd.Longitude = &lng
	}
	return cmd, nil
}

func normalizePhotoURLs(urls []string, max int) ([]string, error) {
	if len(urls) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{})
	result := make([]string, 0, len(urls))
	for _, raw := range urls {
		urlStr := strings.TrimSpace(raw)
		if urlStr == "" {
			continue
		}
		if len(urlStr) > 2048 {
			return nil, fmt.Errorf("photo URL too long: %s", urlStr)
		}
		if _, ok := seen[urlStr]; ok {
			continue
		}
		seen[urlStr] = struct{}{}
		result = append(result, urlStr)
		if len(result) > max {
			return nil, fmt.Errorf("at most %d photo URLs are allowed", max)
		}
	}
	return result, nil
}
