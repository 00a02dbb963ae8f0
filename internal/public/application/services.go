package application

import (
	"context"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
	"github.com/dkellner85/poi-console-services/api/internal/public/domain"
)

// POIRepository reads published POIs.
type POIRepository interface {
	Find(ctx context.Context, filter POIFilter, paging Paging) ([]domain.POI, error)
	FindBySlug(ctx context.Context, slug string) (*domain.POI, error)
}

// SuggestionRepository stores visitor submissions.
type SuggestionRepository interface {
	Insert(ctx context.Context, suggestion *domain.Suggestion) error
}

// HoursCache caches the rendered per-day hours of a POI.
type HoursCache interface {
	Get(ctx context.Context, poiID string, date hours.Date) (*EffectiveDay, error)
	Set(ctx context.Context, poiID string, date hours.Date, day *EffectiveDay) error
}

// POIFilter expresses public search criteria.
type POIFilter struct {
	Type     string
	Category string
	Tag      string
	Keyword  string
	Limit    int
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
	Sort  string
}

// POIQueryService describes public POI lookups.
type POIQueryService interface {
	List(ctx context.Context, filter POIFilter, paging Paging) ([]domain.POI, error)
	Detail(ctx context.Context, slug string) (*domain.POI, error)
}

// HoursQueryService resolves and renders the effective hours of a POI for a
// calendar day. A zero date asks for today in the POI's timezone.
type HoursQueryService interface {
	EffectiveDay(ctx context.Context, slug string, date hours.Date) (*EffectiveDay, error)
}

// SuggestionCommandService accepts visitor corrections.
type SuggestionCommandService interface {
	Submit(ctx context.Context, cmd SubmitSuggestionCommand) (*domain.Suggestion, error)
}

// SubmitSuggestionCommand captures a visitor correction.
type SubmitSuggestionCommand struct {
	POISlug     string
	Field       string
	Message     string
	ContactMail string
	ClientIP    string
}
