package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dkellner85/poi-console-services/api/internal/public/domain"
)

// SuggestionRepository stores visitor suggestions and keeps the per-POI
// suggestion counters in sync.
type SuggestionRepository struct {
	suggestions *mongo.Collection
	pois        *mongo.Collection
}

// NewSuggestionRepository binds the suggestion and POI collections.
func NewSuggestionRepository(db *mongo.Database, suggestionCollection, poiCollection string) *SuggestionRepository {
	return &SuggestionRepository{
		suggestions: db.Collection(suggestionCollection),
		pois:        db.Collection(poiCollection),
	}
}

// Insert persists a suggestion and bumps the owning POI's stats so the
// admin list can surface POIs with pending feedback first.
func (r *SuggestionRepository) Insert(ctx context.Context, suggestion *domain.Suggestion) error {
	if suggestion == nil {
		return errors.New("suggestion payload is nil")
	}
	poiID, err := primitive.ObjectIDFromHex(strings.TrimSpace(suggestion.POIID))
	if err != nil {
		return err
	}

	submittedAt := suggestion.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now().UTC()
	}

	doc := SuggestionDocument{
		ID:          primitive.NewObjectID(),
		POIID:       poiID,
		POIName:     suggestion.POIName,
		POISlug:     suggestion.POISlug,
		Field:       suggestion.Field,
		Message:     suggestion.Message,
		ContactMail: suggestion.ContactMail,
		ClientIP:    suggestion.ClientIP,
		SubmittedAt: submittedAt,
	}
	if _, err := r.suggestions.InsertOne(ctx, doc); err != nil {
		return err
	}
	suggestion.ID = doc.ID.Hex()
	suggestion.SubmittedAt = doc.SubmittedAt

	_, err = r.pois.UpdateByID(ctx, poiID, bson.M{
		"$inc": bson.M{"stats.suggestionCount": 1},
		"$set": bson.M{"stats.lastSuggestedAt": doc.SubmittedAt},
	})
	return err
}
