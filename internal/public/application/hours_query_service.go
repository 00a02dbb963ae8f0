package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
	"github.com/dkellner85/poi-console-services/api/internal/infrastructure/metrics"
)

// TimeVaries is rendered when a boundary has no clock time: solar specs
// without coordinates and qualitative specs.
const TimeVaries = "varies"

// RenderedPeriod is one open interval with clock-time strings ready for
// display.
type RenderedPeriod struct {
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
	Note   string `json:"note,omitempty"`
}

// EffectiveDay is the resolved, rendered hours of a POI for one date.
type EffectiveDay struct {
	Date        string             `json:"date"`
	Timezone    string             `json:"timezone"`
	Status      string             `json:"status"`
	Provenance  string             `json:"provenance"`
	Source      string             `json:"source,omitempty"`
	Periods     []RenderedPeriod   `json:"periods,omitempty"`
	Diagnostics []hours.Diagnostic `json:"diagnostics,omitempty"`
}

type hoursQueryService struct {
	repo   POIRepository
	cache  HoursCache
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewHoursQueryService builds the query service behind the public
// "hours today" endpoint. The cache may be nil; resolution then happens on
// every request.
func NewHoursQueryService(repo POIRepository, cache HoursCache, logger *zap.SugaredLogger) HoursQueryService {
	return &hoursQueryService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

func (s *hoursQueryService) EffectiveDay(ctx context.Context, slug string, date hours.Date) (*EffectiveDay, error) {
	poi, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// A zero date means "today", which only has a meaning in the POI's own
	// timezone. An evening visitor west of UTC must not be served tomorrow.
	if date.IsZero() {
		date = hours.DateOf(s.now().In(poiLocation(poi.Hours.Timezone)))
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, poi.ID, date)
		if err != nil {
			s.logger.Debugw("hours cache read failed", "poiId", poi.ID, "error", err)
		} else if cached != nil {
			metrics.ObserveCacheHit()
			return cached, nil
		}
		metrics.ObserveCacheMiss()
	}

	res := hours.Resolve(poi.Hours, date)
	metrics.ObserveResolution(res)

	day := renderResolution(res, poi.Hours.Timezone, poi.Coordinates)
	if s.cache != nil {
		if err := s.cache.Set(ctx, poi.ID, date, day); err != nil {
			s.logger.Debugw("hours cache write failed", "poiId", poi.ID, "error", err)
		}
	}
	return day, nil
}

// poiLocation loads the document timezone, falling back to UTC.
func poiLocation(timezone string) *time.Location {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// renderResolution turns a resolver result into display strings.
func renderResolution(res hours.Resolution, timezone string, coords *hours.Coordinates) *EffectiveDay {
	loc := poiLocation(timezone)

	day := &EffectiveDay{
		Date:        res.Date.String(),
		Timezone:    timezone,
		Status:      string(res.Hours.Status),
		Provenance:  string(res.Provenance),
		Source:      res.Source,
		Diagnostics: res.Diagnostics,
	}
	for _, period := range res.Hours.Periods {
		day.Periods = append(day.Periods, RenderedPeriod{
			Opens:  renderSpec(period.Open, res.Date, loc, coords),
			Closes: renderSpec(period.Close, res.Date, loc, coords),
			Note:   period.Note,
		})
	}
	return day
}

// renderSpec produces an HH:MM clock string, or TimeVaries when the spec has
// no absolute time on this date.
func renderSpec(spec hours.TimeSpec, date hours.Date, loc *time.Location, coords *hours.Coordinates) string {
	at, err := spec.Evaluate(date, loc, coords)
	if err != nil {
		return TimeVaries
	}
	return at.Format("15:04")
}
