package application

import (
	"context"

	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
	"github.com/dkellner85/poi-console-services/api/internal/hours"
)

// POIRepository exposes admin operations on POIs.
type POIRepository interface {
	Find(ctx context.Context, filter POIFilter, paging Paging) ([]admindomain.POI, error)
	FindByID(ctx context.Context, id string) (*admindomain.POI, error)
	Create(ctx context.Context, poi *admindomain.POI) error
	Update(ctx context.Context, poi *admindomain.POI) error
	ReplaceHours(ctx context.Context, id string, doc hours.HoursDocument) error
}

// SuggestionRepository exposes the editor's suggestion inbox.
type SuggestionRepository interface {
	List(ctx context.Context, paging Paging) ([]admindomain.Suggestion, error)
	Delete(ctx context.Context, id string) error
}

// HoursCache invalidates cached per-day resolutions when the source document
// changes.
type HoursCache interface {
	Invalidate(ctx context.Context, poiID string) error
}

// POIFilter expresses admin search criteria.
type POIFilter struct {
	Type     string
	Category string
	Keyword  string
	Limit    int
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
	Sort  string
}

// POIService describes admin POI use-cases.
type POIService interface {
	List(ctx context.Context, filter POIFilter, paging Paging) ([]admindomain.POI, error)
	Detail(ctx context.Context, id string) (*admindomain.POI, error)
	Create(ctx context.Context, cmd UpsertPOICommand) (*admindomain.POI, error)
	Update(ctx context.Context, id string, cmd UpsertPOICommand) (*admindomain.POI, error)
	ReplaceHours(ctx context.Context, id string, doc hours.HoursDocument) ([]hours.FieldError, error)
	ResolveDay(ctx context.Context, id string, date hours.Date) (*hours.Resolution, error)
}

// SuggestionService describes the suggestion inbox use-cases.
type SuggestionService interface {
	List(ctx context.Context, paging Paging) ([]admindomain.Suggestion, error)
	Dismiss(ctx context.Context, id string) error
}

// UpsertPOICommand contains inputs for creating/updating POIs.
type UpsertPOICommand struct {
	Name        string
	Slug        string
	Type        string
	Categories  []string
	AmenityTags []string
	Address     string
	Area        string
	Latitude    *float64
	Longitude   *float64
	Phone       string
	Email       string
	WebsiteURL  string
	PhotoURLs   []string
	Description string
}
