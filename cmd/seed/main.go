package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
)

type seedOptions struct {
	poiCount        int
	suggestionCount int
	dropCollections bool
	randomSeed      int64
}

type poiTemplate struct {
	name       string
	poiType    string
	categories []string
	tags       []string
	area       string
	lat        float64
	lng        float64
}

var templates = []poiTemplate{
	{"Corner Cafe", "business", []string{"cafe"}, []string{"wifi", "outdoor-seating"}, "Downtown", 40.7128, -74.0060},
	{"Harbor Park", "park", []string{"park"}, []string{"restrooms", "pet-friendly"}, "Waterfront", 40.7010, -74.0150},
	{"Ridge Trail", "trail", []string{"trailhead"}, []string{"parking"}, "North Hills", 40.8000, -73.9500},
	{"Old Mill Museum", "business", []string{"museum"}, []string{"wheelchair-accessible", "restrooms"}, "Riverside", 40.7306, -73.9866},
	{"Sunset Overlook", "trail", []string{"viewpoint"}, nil, "North Hills", 40.8120, -73.9410},
	{"Farmers Market on 5th", "event", []string{"market"}, []string{"parking"}, "Midtown", 40.7450, -73.9800},
	{"Lakeside Playground", "park", []string{"playground"}, []string{"restrooms"}, "Eastside", 40.7210, -73.9550},
	{"Grand Theater", "business", []string{"theater"}, []string{"wheelchair-accessible"}, "Midtown", 40.7590, -73.9845},
}

var suggestionFields = []string{"hours", "address", "contact", "photos", "closure", "category", "other"}

var suggestionMessages = []string{
	"They close at 16:00 on Sundays now.",
	"The entrance moved around the corner to Pine St.",
	"Phone number on the page is disconnected.",
	"The photo shows the old storefront.",
	"Closed for renovation until further notice.",
	"This is listed as a cafe but it is really a bar.",
	"Gate was locked at dusk even though hours say open.",
}

func main() {
	_ = godotenv.Load()

	opts := parseFlags()
	rng := rand.New(rand.NewSource(opts.randomSeed))

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	database := envOrDefault("MONGO_DB", "poi-console")
	poiCollection := envOrDefault("POI_COLLECTION", "pois")
	suggestionCollection := envOrDefault("SUGGESTION_COLLECTION", "suggestions")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(database)
	pois := db.Collection(poiCollection)
	suggestions := db.Collection(suggestionCollection)

	if opts.dropCollections {
		if err := pois.Drop(ctx); err != nil {
			log.Fatalf("drop %s failed: %v", poiCollection, err)
		}
		if err := suggestions.Drop(ctx); err != nil {
			log.Fatalf("drop %s failed: %v", suggestionCollection, err)
		}
	}

	poiIDs, err := seedPOIs(ctx, pois, rng, opts.poiCount)
	if err != nil {
		log.Fatalf("seeding POIs failed: %v", err)
	}
	if err := seedSuggestions(ctx, pois, suggestions, rng, poiIDs, opts.suggestionCount); err != nil {
		log.Fatalf("seeding suggestions failed: %v", err)
	}

	fmt.Printf("seeded %d POIs and %d suggestions into %s\n", len(poiIDs), opts.suggestionCount, database)
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.IntVar(&opts.poiCount, "pois", len(templates), "number of POIs to insert")
	flag.IntVar(&opts.suggestionCount, "suggestions", 12, "number of suggestions to insert")
	flag.BoolVar(&opts.dropCollections, "drop", false, "drop target collections before seeding")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()
	return opts
}

type seededPOI struct {
	id   primitive.ObjectID
	name string
	slug string
}

func seedPOIs(ctx context.Context, collection *mongo.Collection, rng *rand.Rand, count int) ([]seededPOI, error) {
	result := make([]seededPOI, 0, count)
	now := time.Now().UTC()

	for i := 0; i < count; i++ {
		tpl := templates[i%len(templates)]
		name := tpl.name
		slug := slugify(name)
		if i >= len(templates) {
			name = fmt.Sprintf("%s %d", tpl.name, i/len(templates)+1)
			slug = fmt.Sprintf("%s-%d", slugify(tpl.name), i/len(templates)+1)
		}

		doc := buildHoursDocument(tpl, rng)
		blob, err := hoursToBSON(doc)
		if err != nil {
			return nil, err
		}

		id := primitive.NewObjectID()
		payload := bson.M{
			"_id":         id,
			"name":        name,
			"slug":        slug,
			"type":        tpl.poiType,
			"categories":  tpl.categories,
			"amenityTags": tpl.tags,
			"address":     fmt.Sprintf("%d Main St", 100+rng.Intn(900)),
			"area":        tpl.area,
			"coordinates": bson.M{"latitude": tpl.lat, "longitude": tpl.lng},
			"description": fmt.Sprintf("A favorite spot in %s.", tpl.area),
			"hours":       blob,
			"stats":       bson.M{"suggestionCount": 0},
			"createdAt":   now,
			"updatedAt":   now,
		}
		if _, err := collection.InsertOne(ctx, payload); err != nil {
			return nil, err
		}
		result = append(result, seededPOI{id: id, name: name, slug: slug})
	}
	return result, nil
}

// buildHoursDocument gives each POI type a characteristic schedule so the
// resolver has something interesting to work with out of the box.
func buildHoursDocument(tpl poiTemplate, rng *rand.Rand) hours.HoursDocument {
	doc := hours.DefaultDocument("America/New_York")

	switch tpl.poiType {
	case "trail", "park":
		for _, day := range hours.Weekdays {
			doc.Regular[day] = hours.DayHours{Status: hours.StatusOpen, Periods: []hours.Period{
				{Open: hours.SolarTime(hours.SpecDawn, 0), Close: hours.SolarTime(hours.SpecDusk, 0)},
			}}
		}
		doc = hours.AddSeason(doc, hours.Winter)
		doc = hours.SetSeasonDay(doc, hours.Winter, hours.Monday, hours.Closed())
	case "event":
		for _, day := range hours.Weekdays {
			doc.Regular[day] = hours.Closed()
		}
		doc.Regular[hours.Saturday] = hours.DayHours{Status: hours.StatusOpen, Periods: []hours.Period{
			{Open: hours.FixedTime("08:00"), Close: hours.FixedTime("14:00")},
		}}
	default:
		doc = hours.SetDayStatus(doc, hours.Sunday, hours.StatusClosed)
		doc = hours.AddHoliday(doc, "thanksgiving")
		doc = hours.SetHolidayStatus(doc, "thanksgiving", hours.OverrideClosed)
	}

	if rng.Intn(2) == 0 {
		date := hours.NewDate(time.Now().Year(), time.Month(1+rng.Intn(12)), 1+rng.Intn(28))
		doc = hours.AddException(doc, hours.Exception{
			Type:   hours.ExceptionOneTime,
			Date:   &date,
			Status: hours.OverrideClosed,
			Reason: "private event",
		})
	}
	return doc
}

func seedSuggestions(ctx context.Context, pois, suggestions *mongo.Collection, rng *rand.Rand, seeded []seededPOI, count int) error {
	if len(seeded) == 0 {
		return nil
	}
	for i := 0; i < count; i++ {
		target := seeded[rng.Intn(len(seeded))]
		submittedAt := time.Now().UTC().Add(-time.Duration(rng.Intn(30*24)) * time.Hour)

		doc := bson.M{
			"_id":         primitive.NewObjectID(),
			"poiId":       target.id,
			"poiName":     target.name,
			"poiSlug":     target.slug,
			"field":       suggestionFields[rng.Intn(len(suggestionFields))],
			"message":     suggestionMessages[rng.Intn(len(suggestionMessages))],
			"clientIp":    fmt.Sprintf("203.0.113.%d", rng.Intn(255)),
			"submittedAt": submittedAt,
		}
		if _, err := suggestions.InsertOne(ctx, doc); err != nil {
			return err
		}
		if _, err := pois.UpdateByID(ctx, target.id, bson.M{
			"$inc": bson.M{"stats.suggestionCount": 1},
			"$set": bson.M{"stats.lastSuggestedAt": submittedAt},
		}); err != nil {
			return err
		}
	}
	return nil
}

func hoursToBSON(doc hours.HoursDocument) (bson.M, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var raw bson.M
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func slugify(name string) string {
	lower := strings.ToLower(name)
	var builder strings.Builder
	lastDash := true
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			builder.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				builder.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(builder.String(), "-")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
