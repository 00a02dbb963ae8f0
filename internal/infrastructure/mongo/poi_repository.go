package mongo

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dkellner85/poi-console-services/api/internal/public/application"
	"github.com/dkellner85/poi-console-services/api/internal/public/domain"
)

// POIRepository is the Mongo implementation of the public POI read model.
type POIRepository struct {
	collection *mongo.Collection
}

// NewPOIRepository binds a POIRepository to a collection.
func NewPOIRepository(db *mongo.Database, collection string) *POIRepository {
	return &POIRepository{collection: db.Collection(collection)}
}

// Find lists published POIs matching the public filters.
func (r *POIRepository) Find(ctx context.Context, filter application.POIFilter, paging application.Paging) ([]domain.POI, error) {
	mongoFilter := bson.M{}
	clauses := make([]bson.M, 0)
	if filter.Type != "" {
		clauses = append(clauses, bson.M{"type": filter.Type})
	}
	if filter.Category != "" {
		clauses = append(clauses, bson.M{"categories": filter.Category})
	}
	if filter.Tag != "" {
		clauses = append(clauses, bson.M{"amenityTags": filter.Tag})
	}
	if filter.Keyword != "" {
		pattern := regexp.QuoteMeta(filter.Keyword)
		regex := primitive.Regex{Pattern: pattern, Options: "i"}
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"name": regex},
			bson.M{"area": regex},
			bson.M{"description": regex},
		}})
	}
	if len(clauses) == 1 {
		mongoFilter = clauses[0]
	} else if len(clauses) > 1 {
		mongoFilter["$and"] = clauses
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = paging.Limit
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	sort := bson.D{{Key: "name", Value: 1}}
	if paging.Sort == "recent" {
		sort = bson.D{{Key: "updatedAt", Value: -1}}
	}
	opts := options.Find().SetSort(sort).SetLimit(int64(limit))
	if paging.Page > 1 {
		opts.SetSkip(int64((paging.Page - 1) * limit))
	}

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pois := make([]domain.POI, 0)
	for cursor.Next(ctx) {
		var doc POIDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		poi, err := mapPublicPOI(doc)
		if err != nil {
			return nil, err
		}
		pois = append(pois, poi)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return pois, nil
}

// FindBySlug looks up a single POI by its public slug.
func (r *POIRepository) FindBySlug(ctx context.Context, slug string) (*domain.POI, error) {
	var doc POIDocument
	if err := r.collection.FindOne(ctx, bson.M{"slug": strings.TrimSpace(slug)}).Decode(&doc); err != nil {
		return nil, err
	}
	poi, err := mapPublicPOI(doc)
	if err != nil {
		return nil, err
	}
	return &poi, nil
}

// mapPublicPOI converts a Mongo document into the public read model. The
// read model carries plain strings; validation happened on the way in.
func mapPublicPOI(doc POIDocument) (domain.POI, error) {
	hoursDoc, err := decodeHoursDocument(doc.Hours)
	if err != nil {
		return domain.POI{}, err
	}

	poi := domain.POI{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Slug:        doc.Slug,
		Type:        doc.Type,
		Categories:  append([]string(nil), doc.Categories...),
		AmenityTags: append([]string(nil), doc.AmenityTags...),
		Address:     doc.Address,
		Area:        doc.Area,
		Coordinates: mapCoordinates(doc.Coordinates),
		Phone:       doc.Phone,
		Email:       doc.Email,
		WebsiteURL:  doc.WebsiteURL,
		PhotoURLs:   append([]string(nil), doc.PhotoURLs...),
		Description: doc.Description,
		Hours:       hoursDoc,
		Stats: domain.POIStats{
			SuggestionCount: doc.Stats.SuggestionCount,
			LastSuggestedAt: doc.Stats.LastSuggestedAt,
		},
	}
	if doc.CreatedAt != nil {
		poi.CreatedAt = *doc.CreatedAt
	}
	if doc.UpdatedAt != nil {
		poi.UpdatedAt = *doc.UpdatedAt
	}
	return poi, nil
}
