package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adminapp "github.com/dkellner85/poi-console-services/api/internal/admin/application"
	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
)

// AdminSuggestionRepository serves the editor's suggestion inbox.
type AdminSuggestionRepository struct {
	suggestions *mongo.Collection
	pois        *mongo.Collection
}

// NewAdminSuggestionRepository binds the suggestion and POI collections.
func NewAdminSuggestionRepository(db *mongo.Database, suggestionCollection, poiCollection string) *AdminSuggestionRepository {
	return &AdminSuggestionRepository{
		suggestions: db.Collection(suggestionCollection),
		pois:        db.Collection(poiCollection),
	}
}

// List returns suggestions newest first.
func (r *AdminSuggestionRepository) List(ctx context.Context, paging adminapp.Paging) ([]admindomain.Suggestion, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	if paging.Limit > 0 {
		findOpts.SetLimit(int64(paging.Limit))
		if paging.Page > 1 {
			findOpts.SetSkip(int64((paging.Page - 1) * paging.Limit))
		}
	}

	cursor, err := r.suggestions.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	suggestions := make([]admindomain.Suggestion, 0)
	for cursor.Next(ctx) {
		var doc SuggestionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		suggestion, err := mapAdminSuggestion(doc)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, suggestion)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// Delete removes a dismissed suggestion and decrements the owning POI's
// pending counter, flooring at zero.
func (r *AdminSuggestionRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}

	var doc SuggestionDocument
	if err := r.suggestions.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errors.New("suggestion not found")
		}
		return err
	}

	_, err = r.pois.UpdateOne(ctx,
		bson.M{"_id": doc.POIID, "stats.suggestionCount": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"stats.suggestionCount": -1}},
	)
	return err
}

// mapAdminSuggestion converts a suggestion document through the admin
// value objects.
func mapAdminSuggestion(doc SuggestionDocument) (admindomain.Suggestion, error) {
	slug, err := admindomain.NewSlug(doc.POISlug)
	if err != nil {
		return admindomain.Suggestion{}, err
	}
	mail, err := admindomain.NewEmail(doc.ContactMail)
	if err != nil {
		return admindomain.Suggestion{}, err
	}
	return admindomain.Suggestion{
		ID:          doc.ID.Hex(),
		POIID:       doc.POIID.Hex(),
		POIName:     doc.POIName,
		POISlug:     slug,
		Field:       doc.Field,
		Message:     doc.Message,
		ContactMail: mail,
		ClientIP:    doc.ClientIP,
		SubmittedAt: doc.SubmittedAt,
	}, nil
}
