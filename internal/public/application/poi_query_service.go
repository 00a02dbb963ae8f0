package application

import (
	"context"

	"github.com/dkellner85/poi-console-services/api/internal/public/domain"
)

// poiQueryService is the concrete implementation of POIQueryService.
type poiQueryService struct {
	repo POIRepository
}

// NewPOIQueryService creates a new POI query service.
func NewPOIQueryService(repo POIRepository) POIQueryService {
	return &poiQueryService{repo: repo}
}

func (s *poiQueryService) List(ctx context.Context, filter POIFilter, paging Paging) ([]domain.POI, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *poiQueryService) Detail(ctx context.Context, slug string) (*domain.POI, error) {
	return s.repo.FindBySlug(ctx, slug)
}
