package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
	"github.com/dkellner85/poi-console-services/api/internal/hours"
)

type fakeAdminPOIRepo struct {
	pois          map[string]*admindomain.POI
	nextID        int
	replacedHours map[string]hours.HoursDocument
}

func newFakeAdminPOIRepo(pois ...*admindomain.POI) *fakeAdminPOIRepo {
	repo := &fakeAdminPOIRepo{pois: map[string]*admindomain.POI{}, replacedHours: map[string]hours.HoursDocument{}}
	for _, poi := range pois {
		repo.pois[poi.ID] = poi
	}
	return repo
}

func (r *fakeAdminPOIRepo) Find(_ context.Context, _ POIFilter, _ Paging) ([]admindomain.POI, error) {
	result := make([]admindomain.POI, 0, len(r.pois))
	for _, poi := range r.pois {
		result = append(result, *poi)
	}
	return result, nil
}

func (r *fakeAdminPOIRepo) FindByID(_ context.Context, id string) (*admindomain.POI, error) {
	poi, ok := r.pois[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return poi, nil
}

func (r *fakeAdminPOIRepo) Create(_ context.Context, poi *admindomain.POI) error {
	r.nextID++
	poi.ID = string(rune('a' + r.nextID))
	r.pois[poi.ID] = poi
	return nil
}

func (r *fakeAdminPOIRepo) Update(_ context.Context, poi *admindomain.POI) error {
	if _, ok := r.pois[poi.ID]; !ok {
		return errors.New("not found")
	}
	r.pois[poi.ID] = poi
	return nil
}

func (r *fakeAdminPOIRepo) ReplaceHours(_ context.Context, id string, doc hours.HoursDocument) error {
	if _, ok := r.pois[id]; !ok {
		return errors.New("not found")
	}
	r.replacedHours[id] = doc
	return nil
}

type fakeInvalidator struct {
	invalidated []string
}

func (c *fakeInvalidator) Invalidate(_ context.Context, poiID string) error {
	c.invalidated = append(c.invalidated, poiID)
	return nil
}

func validCommand() UpsertPOICommand {
	return UpsertPOICommand{
		Name:       "Corner Cafe",
		Slug:       "corner-cafe",
		Type:       "business",
		Categories: []string{"cafe"},
		Address:    "12 Main St",
		Area:       "Downtown",
	}
}

func TestCreateSeedsDefaultHours(t *testing.T) {
	repo := newFakeAdminPOIRepo()
	svc := NewPOIService(repo, &fakeInvalidator{}, zap.NewNop().Sugar(), "America/New_York")

	poi, err := svc.Create(context.Background(), validCommand())
	require.NoError(t, err)

	assert.NotEmpty(t, poi.ID)
	assert.Equal(t, "America/New_York", poi.Hours.Timezone)
	assert.Len(t, poi.Hours.Regular, 7)
	assert.False(t, poi.CreatedAt.IsZero())
	assert.Equal(t, poi.CreatedAt, poi.UpdatedAt)
	assert.Contains(t, repo.pois, poi.ID)
}

func TestCreateRejectsInvalidSlug(t *testing.T) {
	repo := newFakeAdminPOIRepo()
	svc := NewPOIService(repo, &fakeInvalidator{}, zap.NewNop().Sugar(), "UTC")

	cmd := validCommand()
	cmd.Slug = "Not A Slug"
	_, err := svc.Create(context.Background(), cmd)
	assert.Error(t, err)
	assert.Empty(t, repo.pois)
}

func TestUpdatePreservesHoursAndCreatedAt(t *testing.T) {
	doc := hours.DefaultDocument("UTC")
	doc = hours.SetDayStatus(doc, hours.Sunday, hours.StatusClosed)
	created := time.Date(2025, time.January, 5, 12, 0, 0, 0, time.UTC)
	existing := &admindomain.POI{
		ID:        "poi-1",
		Name:      "Corner Cafe",
		Hours:     doc,
		CreatedAt: created,
		UpdatedAt: created,
	}
	repo := newFakeAdminPOIRepo(existing)
	svc := NewPOIService(repo, &fakeInvalidator{}, zap.NewNop().Sugar(), "UTC")

	cmd := validCommand()
	cmd.Name = "Corner Cafe & Bakery"
	updated, err := svc.Update(context.Background(), "poi-1", cmd)
	require.NoError(t, err)

	assert.Equal(t, "Corner Cafe & Bakery", updated.Name)
	assert.Equal(t, hours.StatusClosed, updated.Hours.Regular[hours.Sunday].Status)
	assert.Equal(t, created, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created))
}

func TestReplaceHoursReturnsFieldErrorsWithoutPersisting(t *testing.T) {
	existing := &admindomain.POI{ID: "poi-1", Hours: hours.DefaultDocument("UTC")}
	repo := newFakeAdminPOIRepo(existing)
	cache := &fakeInvalidator{}
	svc := NewPOIService(repo, cache, zap.NewNop().Sugar(), "UTC")

	broken := hours.DefaultDocument("UTC")
	delete(broken.Regular, hours.Monday)

	fieldErrs, err := svc.ReplaceHours(context.Background(), "poi-1", broken)
	require.NoError(t, err)
	require.NotEmpty(t, fieldErrs)
	assert.Equal(t, hours.KindIncompleteRegularHours, fieldErrs[0].Kind)
	assert.Empty(t, repo.replacedHours)
	assert.Empty(t, cache.invalidated)
}

func TestReplaceHoursPersistsAndInvalidatesCache(t *testing.T) {
	existing := &admindomain.POI{ID: "poi-1", Hours: hours.DefaultDocument("UTC")}
	repo := newFakeAdminPOIRepo(existing)
	cache := &fakeInvalidator{}
	svc := NewPOIService(repo, cache, zap.NewNop().Sugar(), "UTC")

	doc := hours.DefaultDocument("UTC")
	doc = hours.SetDayStatus(doc, hours.Saturday, hours.StatusTwentyFourHours)

	fieldErrs, err := svc.ReplaceHours(context.Background(), "poi-1", doc)
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	require.Contains(t, repo.replacedHours, "poi-1")
	assert.Equal(t, hours.StatusTwentyFourHours, repo.replacedHours["poi-1"].Regular[hours.Saturday].Status)
	assert.Equal(t, []string{"poi-1"}, cache.invalidated)
}

func TestReplaceHoursUnknownID(t *testing.T) {
	repo := newFakeAdminPOIRepo()
	svc := NewPOIService(repo, &fakeInvalidator{}, zap.NewNop().Sugar(), "UTC")

	_, err := svc.ReplaceHours(context.Background(), "missing", hours.DefaultDocument("UTC"))
	assert.Error(t, err)
}

func TestResolveDayUsesStoredDocument(t *testing.T) {
	doc := hours.DefaultDocument("UTC")
	doc = hours.SetDayStatus(doc, hours.Sunday, hours.StatusClosed)
	repo := newFakeAdminPOIRepo(&admindomain.POI{ID: "poi-1", Hours: doc})
	svc := NewPOIService(repo, &fakeInvalidator{}, zap.NewNop().Sugar(), "UTC")

	// 2025-06-01 is a Sunday.
	res, err := svc.ResolveDay(context.Background(), "poi-1", hours.NewDate(2025, time.June, 1))
	require.NoError(t, err)
	assert.Equal(t, hours.StatusClosed, res.Hours.Status)
	assert.Equal(t, hours.ProvenanceRegular, res.Provenance)
}
