package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
	"github.com/dkellner85/poi-console-services/api/internal/hours"
)

// poiService implements POIService.
type poiService struct {
	repo            POIRepository
	cache           HoursCache
	logger          *zap.SugaredLogger
	defaultTimezone string
}

// NewPOIService wires the repository and the hours cache together. The
// default timezone seeds the hours document of newly created POIs.
func NewPOIService(repo POIRepository, cache HoursCache, logger *zap.SugaredLogger, defaultTimezone string) POIService {
	return &poiService{repo: repo, cache: cache, logger: logger, defaultTimezone: defaultTimezone}
}

func (s *poiService) List(ctx context.Context, filter POIFilter, paging Paging) ([]admindomain.POI, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *poiService) Detail(ctx context.Context, id string) (*admindomain.POI, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *poiService) Create(ctx context.Context, cmd UpsertPOICommand) (*admindomain.POI, error) {
	poi, err := buildPOIFromCommand("", cmd)
	if err != nil {
		return nil, err
	}
	poi.Hours = hours.DefaultDocument(s.defaultTimezone)
	now := time.Now().UTC()
	poi.CreatedAt = now
	poi.UpdatedAt = now
	if err := s.repo.Create(ctx, poi); err != nil {
		return nil, err
	}
	return poi, nil
}

func (s *poiService) Update(ctx context.Context, id string, cmd UpsertPOICommand) (*admindomain.POI, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	poi, err := buildPOIFromCommand(id, cmd)
	if err != nil {
		return nil, err
	}
	// The hours document has its own replace operation; a profile update
	// must not touch it.
	poi.Hours = current.Hours
	poi.CreatedAt = current.CreatedAt
	poi.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, poi); err != nil {
		return nil, err
	}
	return poi, nil
}

func (s *poiService) ReplaceHours(ctx context.Context, id string, doc hours.HoursDocument) ([]hours.FieldError, error) {
	if fieldErrs := hours.Validate(doc); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceHours(ctx, id, doc); err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.logger.Warnw("hours cache invalidation failed", "poiId", id, "error", err)
		}
	}
	return nil, nil
}

func (s *poiService) ResolveDay(ctx context.Context, id string, date hours.Date) (*hours.Resolution, error) {
	poi, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res := hours.Resolve(poi.Hours, date)
	return &res, nil
}

func buildPOIFromCommand(id string, cmd UpsertPOICommand) (*admindomain.POI, error) {
	slug, err := admindomain.NewSlug(cmd.Slug)
	if err != nil {
		return nil, err
	}
	poiType, err := admindomain.NewPOIType(cmd.Type)
	if err != nil {
		return nil, err
	}
	categories, err := admindomain.NewCategoryList(cmd.Categories)
	if err != nil {
		return nil, err
	}
	tags, err := admindomain.NewAmenityTagList(cmd.AmenityTags)
	if err != nil {
		return nil, err
	}
	contact, err := admindomain.NewContact(cmd.Phone, cmd.Email, cmd.WebsiteURL)
	if err != nil {
		return nil, err
	}
	photos, err := admindomain.NewPhotoURLList(cmd.PhotoURLs, 0)
	if err != nil {
		return nil, err
	}
	coords, err := buildCoordinates(cmd.Latitude, cmd.Longitude)
	if err != nil {
		return nil, err
	}

	return &admindomain.POI{
		ID:          id,
		Name:        cmd.Name,
		Slug:        slug,
		Type:        poiType,
		Categories:  categories,
		AmenityTags: tags,
		Address:     cmd.Address,
		Area:        cmd.Area,
		Coordinates: coords,
		Phone:       contact.Phone,
		Email:       contact.Email,
		WebsiteURL:  contact.WebsiteURL,
		PhotoURLs:   photos,
		Description: cmd.Description,
	}, nil
}

func buildCoordinates(lat, lon *float64) (*hours.Coordinates, error) {
	if lat == nil && lon == nil {
		return nil, nil
	}
	if lat == nil || lon == nil {
		return nil, errors.New("latitude and longitude must be set together")
	}
	if *lat < -90 || *lat > 90 {
		return nil, fmt.Errorf("latitude out of range: %v", *lat)
	}
	if *lon < -180 || *lon > 180 {
		return nil, fmt.Errorf("longitude out of range: %v", *lon)
	}
	return &hours.Coordinates{Latitude: *lat, Longitude: *lon}, nil
}
