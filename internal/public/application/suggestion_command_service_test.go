package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
	"github.com/dkellner85/poi-console-services/api/internal/public/domain"
)

type fakeSuggestionRepo struct {
	inserted []*domain.Suggestion
}

func (r *fakeSuggestionRepo) Insert(_ context.Context, suggestion *domain.Suggestion) error {
	r.inserted = append(r.inserted, suggestion)
	return nil
}

func suggestionFixture() (*fakeSuggestionRepo, SuggestionCommandService) {
	pois := &fakePOIRepo{pois: map[string]*domain.POI{
		"corner-cafe": {ID: "poi-1", Slug: "corner-cafe", Name: "Corner Cafe", Hours: hours.DefaultDocument("UTC")},
	}}
	repo := &fakeSuggestionRepo{}
	return repo, NewSuggestionCommandService(pois, repo)
}

func TestSubmitSuggestion(t *testing.T) {
	repo, svc := suggestionFixture()

	got, err := svc.Submit(context.Background(), SubmitSuggestionCommand{
		POISlug:     "corner-cafe",
		Field:       "Hours",
		Message:     "  They close at 16:00 on Sundays now. ",
		ContactMail: "visitor@example.com",
		ClientIP:    "203.0.113.7",
	})
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)

	assert.Equal(t, "poi-1", got.POIID)
	assert.Equal(t, "Corner Cafe", got.POIName)
	assert.Equal(t, "hours", got.Field)
	assert.Equal(t, "They close at 16:00 on Sundays now.", got.Message)
	assert.False(t, got.SubmittedAt.IsZero())
}

func TestSubmitSuggestionDefaultsField(t *testing.T) {
	repo, svc := suggestionFixture()

	got, err := svc.Submit(context.Background(), SubmitSuggestionCommand{
		POISlug: "corner-cafe",
		Message: "The photo shows the old storefront.",
	})
	require.NoError(t, err)
	assert.Equal(t, "other", got.Field)
	assert.Len(t, repo.inserted, 1)
}

func TestSubmitSuggestionRejectsBadInput(t *testing.T) {
	repo, svc := suggestionFixture()

	tests := []struct {
		name string
		cmd  SubmitSuggestionCommand
	}{
		{name: "empty message", cmd: SubmitSuggestionCommand{POISlug: "corner-cafe", Message: "   "}},
		{name: "unknown field", cmd: SubmitSuggestionCommand{POISlug: "corner-cafe", Field: "vibes", Message: "x"}},
		{name: "bad email", cmd: SubmitSuggestionCommand{POISlug: "corner-cafe", Message: "x", ContactMail: "not-an-address"}},
		{name: "unknown poi", cmd: SubmitSuggestionCommand{POISlug: "nowhere", Message: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.cmd)
			assert.Error(t, err)
		})
	}
	assert.Empty(t, repo.inserted)
}
