package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dkellner85/poi-console-services/api/internal/admin/application"
	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
	"github.com/dkellner85/poi-console-services/api/internal/hours"
)

// AdminPOIRepository is the Mongo implementation of the admin POI aggregate.
type AdminPOIRepository struct {
	collection *mongo.Collection
}

// NewAdminPOIRepository binds an AdminPOIRepository to a collection.
func NewAdminPOIRepository(db *mongo.Database, collection string) *AdminPOIRepository {
	return &AdminPOIRepository{collection: db.Collection(collection)}
}

// Find returns the admin POI list with fuzzy search and paging support.
func (r *AdminPOIRepository) Find(ctx context.Context, filter application.POIFilter, paging application.Paging) ([]admindomain.POI, error) {
	mongoFilter := bson.M{}
	clauses := make([]bson.M, 0)
	if filter.Type != "" {
		clauses = append(clauses, bson.M{"type": filter.Type})
	}
	if filter.Category != "" {
		clauses = append(clauses, bson.M{"categories": filter.Category})
	}
	if filter.Keyword != "" {
		pattern := regexp.QuoteMeta(filter.Keyword)
		regex := primitive.Regex{Pattern: pattern, Options: "i"}
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"name": regex},
			bson.M{"area": regex},
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

	opts := options.Find().SetSort(bson.D{{Key: "stats.suggestionCount", Value: -1}, {Key: "name", Value: 1}})
	opts.SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pois := make([]admindomain.POI, 0)
	for cursor.Next(ctx) {
		var doc POIDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		poi, err := mapAdminPOI(doc)
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

// FindByID looks up a single POI by hex ObjectID and maps it through the
// value objects.
func (r *AdminPOIRepository) FindByID(ctx context.Context, id string) (*admindomain.POI, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc POIDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	poi, err := mapAdminPOI(doc)
	if err != nil {
		return nil, err
	}
	return &poi, nil
}

// Create inserts a new POI after a duplicate check on name+area and a
// uniqueness check on the slug.
func (r *AdminPOIRepository) Create(ctx context.Context, poi *admindomain.POI) error {
	dup := bson.M{
		"name": strings.TrimSpace(poi.Name),
		"area": strings.TrimSpace(poi.Area),
	}
	if err := r.collection.FindOne(ctx, dup).Err(); err == nil {
		return errors.New("poi already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if err := r.collection.FindOne(ctx, bson.M{"slug": poi.Slug.String()}).Err(); err == nil {
		return fmt.Errorf("slug already in use: %s", poi.Slug)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	payload, err := buildPOIDocument(poi, true)
	if err != nil {
		return err
	}
	objectID := primitive.NewObjectID()
	payload["_id"] = objectID
	if _, err := r.collection.InsertOne(ctx, payload); err != nil {
		return err
	}
	poi.ID = objectID.Hex()
	return nil
}

// Update replaces the profile fields of a POI wholesale.
func (r *AdminPOIRepository) Update(ctx context.Context, poi *admindomain.POI) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(poi.ID))
	if err != nil {
		return err
	}
	update, err := buildPOIDocument(poi, false)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$set": update})
	return err
}

// ReplaceHours swaps the stored hours document for a new one. No partial
// updates; the caller validates first.
func (r *AdminPOIRepository) ReplaceHours(ctx context.Context, id string, doc hours.HoursDocument) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	blob, err := encodeHoursDocument(doc)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$set": bson.M{
		"hours":     blob,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}

// mapAdminPOI converts a Mongo document into the admin domain aggregate.
func mapAdminPOI(doc POIDocument) (admindomain.POI, error) {
	slug, err := admindomain.NewSlug(doc.Slug)
	if err != nil {
		return admindomain.POI{}, err
	}
	poiType, err := admindomain.NewPOIType(doc.Type)
	if err != nil {
		return admindomain.POI{}, err
	}
	categories, err := admindomain.NewCategoryList(doc.Categories)
	if err != nil {
		return admindomain.POI{}, err
	}
	tags, err := admindomain.NewAmenityTagList(doc.AmenityTags)
	if err != nil {
		return admindomain.POI{}, err
	}
	contact, err := admindomain.NewContact(doc.Phone, doc.Email, doc.WebsiteURL)
	if err != nil {
		return admindomain.POI{}, err
	}
	photos, err := admindomain.NewPhotoURLList(doc.PhotoURLs, 0)
	if err != nil {
		return admindomain.POI{}, err
	}
	hoursDoc, err := decodeHoursDocument(doc.Hours)
	if err != nil {
		return admindomain.POI{}, err
	}

	poi := admindomain.POI{
		ID:              doc.ID.Hex(),
		Name:            doc.Name,
		Slug:            slug,
		Type:            poiType,
		Categories:      categories,
		AmenityTags:     tags,
		Address:         doc.Address,
		Area:            doc.Area,
		Coordinates:     mapCoordinates(doc.Coordinates),
		Phone:           contact.Phone,
		Email:           contact.Email,
		WebsiteURL:      contact.WebsiteURL,
		PhotoURLs:       photos,
		Description:     doc.Description,
		Hours:           hoursDoc,
		SuggestionCount: doc.Stats.SuggestionCount,
		LastSuggestedAt: doc.Stats.LastSuggestedAt,
	}
	if doc.CreatedAt != nil {
		poi.CreatedAt = *doc.CreatedAt
	}
	if doc.UpdatedAt != nil {
		poi.UpdatedAt = *doc.UpdatedAt
	}
	return poi, nil
}

func mapCoordinates(doc *CoordinatesDocument) *hours.Coordinates {
	if doc == nil {
		return nil
	}
	return &hours.Coordinates{Latitude: doc.Latitude, Longitude: doc.Longitude}
}

// buildPOIDocument expands the aggregate's value objects into BSON.
func buildPOIDocument(poi *admindomain.POI, includeCreated bool) (bson.M, error) {
	if poi == nil {
		return nil, fmt.Errorf("poi payload is nil")
	}
	blob, err := encodeHoursDocument(poi.Hours)
	if err != nil {
		return nil, err
	}
	payload := bson.M{
		"name":        poi.Name,
		"slug":        poi.Slug.String(),
		"type":        poi.Type.String(),
		"categories":  poi.Categories.Strings(),
		"amenityTags": poi.AmenityTags.Strings(),
		"address":     poi.Address,
		"area":        poi.Area,
		"phone":       poi.Phone.String(),
		"email":       poi.Email.String(),
		"websiteURL":  poi.WebsiteURL.String(),
		"photoURLs":   poi.PhotoURLs.Strings(),
		"description": poi.Description,
		"hours":       blob,
		"updatedAt":   time.Now().UTC(),
	}
	if poi.Coordinates != nil {
		payload["coordinates"] = CoordinatesDocument{
			Latitude:  poi.Coordinates.Latitude,
			Longitude: poi.Coordinates.Longitude,
		}
	} else {
		payload["coordinates"] = nil
	}
	if includeCreated {
		payload["stats"] = POIStatsDocument{}
		payload["createdAt"] = time.Now().UTC()
	}
	return payload, nil
}
