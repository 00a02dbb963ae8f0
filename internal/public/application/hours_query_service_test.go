package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
	"github.com/dkellner85/poi-console-services/api/internal/public/domain"
)

type fakePOIRepo struct {
	pois map[string]*domain.POI
}

func (r *fakePOIRepo) Find(_ context.Context, _ POIFilter, _ Paging) ([]domain.POI, error) {
	return nil, nil
}

func (r *fakePOIRepo) FindBySlug(_ context.Context, slug string) (*domain.POI, error) {
	poi, ok := r.pois[slug]
	if !ok {
		return nil, errors.New("not found")
	}
	return poi, nil
}

type fakeHoursCache struct {
	entries map[string]*EffectiveDay
	sets    int
}

func cacheKey(poiID string, date hours.Date) string {
	return poiID + ":" + date.String()
}

func (c *fakeHoursCache) Get(_ context.Context, poiID string, date hours.Date) (*EffectiveDay, error) {
	return c.entries[cacheKey(poiID, date)], nil
}

func (c *fakeHoursCache) Set(_ context.Context, poiID string, date hours.Date, day *EffectiveDay) error {
	c.entries[cacheKey(poiID, date)] = day
	c.sets++
	return nil
}

func newFixture(pois ...*domain.POI) (*fakePOIRepo, *fakeHoursCache, HoursQueryService) {
	repo := &fakePOIRepo{pois: map[string]*domain.POI{}}
	for _, poi := range pois {
		repo.pois[poi.Slug] = poi
	}
	cache := &fakeHoursCache{entries: map[string]*EffectiveDay{}}
	return repo, cache, NewHoursQueryService(repo, cache, zap.NewNop().Sugar())
}

func TestEffectiveDayRendersFixedPeriods(t *testing.T) {
	poi := &domain.POI{
		ID:    "poi-1",
		Slug:  "corner-cafe",
		Name:  "Corner Cafe",
		Hours: hours.DefaultDocument("America/New_York"),
	}
	_, cache, svc := newFixture(poi)

	day, err := svc.EffectiveDay(context.Background(), "corner-cafe", hours.NewDate(2025, time.June, 2))
	require.NoError(t, err)

	assert.Equal(t, "2025-06-02", day.Date)
	assert.Equal(t, "open", day.Status)
	assert.Equal(t, "regular", day.Provenance)
	require.Len(t, day.Periods, 1)
	assert.Equal(t, "09:00", day.Periods[0].Opens)
	assert.Equal(t, "17:00", day.Periods[0].Closes)
	assert.Equal(t, 1, cache.sets)
}

func TestEffectiveDaySolarWithoutCoordinates(t *testing.T) {
	doc := hours.DefaultDocument("America/New_York")
	doc.Regular[hours.Saturday] = hours.DayHours{Status: hours.StatusOpen, Periods: []hours.Period{
		{Open: hours.SolarTime(hours.SpecDawn, 0), Close: hours.SolarTime(hours.SpecDusk, 0)},
	}}
	poi := &domain.POI{ID: "poi-2", Slug: "ridge-trail", Hours: doc}
	_, _, svc := newFixture(poi)

	// 2025-06-07 is a Saturday.
	day, err := svc.EffectiveDay(context.Background(), "ridge-trail", hours.NewDate(2025, time.June, 7))
	require.NoError(t, err)
	require.Len(t, day.Periods, 1)
	assert.Equal(t, TimeVaries, day.Periods[0].Opens)
	assert.Equal(t, TimeVaries, day.Periods[0].Closes)
}

func TestEffectiveDaySolarWithCoordinates(t *testing.T) {
	doc := hours.DefaultDocument("America/New_York")
	doc.Regular[hours.Saturday] = hours.DayHours{Status: hours.StatusOpen, Periods: []hours.Period{
		{Open: hours.SolarTime(hours.SpecDawn, 0), Close: hours.SolarTime(hours.SpecDusk, 0)},
	}}
	poi := &domain.POI{
		ID:          "poi-3",
		Slug:        "harbor-park",
		Hours:       doc,
		Coordinates: &hours.Coordinates{Latitude: 40.7128, Longitude: -74.0060},
	}
	_, _, svc := newFixture(poi)

	day, err := svc.EffectiveDay(context.Background(), "harbor-park", hours.NewDate(2025, time.June, 7))
	require.NoError(t, err)
	require.Len(t, day.Periods, 1)
	assert.NotEqual(t, TimeVaries, day.Periods[0].Opens)
	assert.Regexp(t, `^\d{2}:\d{2}$`, day.Periods[0].Opens)
	assert.Regexp(t, `^\d{2}:\d{2}$`, day.Periods[0].Closes)
}

func TestEffectiveDayZeroDateUsesPOITimezone(t *testing.T) {
	poi := &domain.POI{
		ID:    "poi-5",
		Slug:  "sunset-overlook",
		Hours: hours.DefaultDocument("Pacific/Honolulu"),
	}
	repo := &fakePOIRepo{pois: map[string]*domain.POI{"sunset-overlook": poi}}
	svc := &hoursQueryService{
		repo:   repo,
		logger: zap.NewNop().Sugar(),
		// 05:00 UTC on June 2 is still the evening of June 1 in Honolulu.
		now: func() time.Time { return time.Date(2025, time.June, 2, 5, 0, 0, 0, time.UTC) },
	}

	day, err := svc.EffectiveDay(context.Background(), "sunset-overlook", hours.Date{})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", day.Date)
}

func TestEffectiveDayZeroDateBadTimezoneFallsBackToUTC(t *testing.T) {
	poi := &domain.POI{ID: "poi-6", Slug: "lost-cabin", Hours: hours.DefaultDocument("Not/AZone")}
	repo := &fakePOIRepo{pois: map[string]*domain.POI{"lost-cabin": poi}}
	svc := &hoursQueryService{
		repo:   repo,
		logger: zap.NewNop().Sugar(),
		now:    func() time.Time { return time.Date(2025, time.June, 2, 5, 0, 0, 0, time.UTC) },
	}

	day, err := svc.EffectiveDay(context.Background(), "lost-cabin", hours.Date{})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", day.Date)
}

func TestEffectiveDayServedFromCache(t *testing.T) {
	poi := &domain.POI{ID: "poi-4", Slug: "old-mill", Hours: hours.DefaultDocument("UTC")}
	_, cache, svc := newFixture(poi)

	date := hours.NewDate(2025, time.June, 2)
	canned := &EffectiveDay{Date: date.String(), Status: "closed", Provenance: "exception"}
	cache.entries[cacheKey("poi-4", date)] = canned

	day, err := svc.EffectiveDay(context.Background(), "old-mill", date)
	require.NoError(t, err)
	assert.Same(t, canned, day)
	assert.Zero(t, cache.sets, "a cache hit must not re-resolve")
}

func TestEffectiveDayUnknownSlug(t *testing.T) {
	_, _, svc := newFixture()
	_, err := svc.EffectiveDay(context.Background(), "nowhere", hours.NewDate(2025, time.June, 2))
	assert.Error(t, err)
}
