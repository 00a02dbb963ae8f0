package domain

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	allowedAmenityTags = []string{"wheelchair-accessible", "parking", "restrooms", "wifi", "pet-friendly", "outdoor-seating"}
	allowedPOITypes    = []string{"business", "park", "trail", "event"}

	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,19}$`)
)

// Slug is the URL-safe public identifier of a POI.
type Slug string

func NewSlug(value string) (Slug, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "", fmt.Errorf("slug is required")
	}
	if !slugPattern.MatchString(trimmed) {
		return "", fmt.Errorf("invalid slug: %s", value)
	}
	return Slug(trimmed), nil
}

func (s Slug) String() string {
	return string(s)
}

// POIType decides which form sections the console shows for a POI.
type POIType string

func NewPOIType(value string) (POIType, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "", fmt.Errorf("poi type is required")
	}
	for _, allowed := range allowedPOITypes {
		if allowed == trimmed {
			return POIType(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid poi type: %s", value)
}

func (t POIType) String() string {
	return string(t)
}

type Category string

func NewCategory(value string) (Category, error) {
	code := CanonicalCategoryCode(value)
	if code == "" {
		return "", fmt.Errorf("category is required")
	}
	return Category(code), nil
}

type CategoryList []Category

func NewCategoryList(values []string) (CategoryList, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("categories must not be empty")
	}
	result := make([]Category, 0, len(values))
	seen := make(map[Category]struct{})
	for _, raw := range values {
		value, err := NewCategory(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return CategoryList(result), nil
}

func (l CategoryList) Strings() []string {
	result := make([]string, 0, len(l))
	for _, v := range l {
		result = append(result, string(v))
	}
	return result
}

type AmenityTag string

func NewAmenityTag(value string) (AmenityTag, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "", fmt.Errorf("amenity tag is required")
	}
	for _, allowed := range allowedAmenityTags {
		if allowed == trimmed {
			return AmenityTag(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid amenity tag: %s", value)
}

type AmenityTagList []AmenityTag

func NewAmenityTagList(values []string) (AmenityTagList, error) {
	if len(values) == 0 {
		return nil, nil
	}
	result := make([]AmenityTag, 0, len(values))
	seen := make(map[AmenityTag]struct{})
	for _, raw := range values {
		tag, err := NewAmenityTag(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return AmenityTagList(result), nil
}

func (l AmenityTagList) Strings() []string {
	result := make([]string, 0, len(l))
	for _, v := range l {
		result = append(result, string(v))
	}
	return result
}

type Phone string

func NewPhone(value string) (Phone, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if !phonePattern.MatchString(trimmed) {
		return "", fmt.Errorf("invalid phone number: %s", value)
	}
	return Phone(trimmed), nil
}

func (p Phone) String() string {
	return string(p)
}

type Email string

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) > 254 {
		return "", fmt.Errorf("email too long")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("invalid email: %w", err)
	}
	return Email(trimmed), nil
}

func (e Email) String() string {
	return string(e)
}

type URL string

func NewURL(value string) (URL, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	return URL(trimmed), nil
}

func (u URL) String() string {
	return string(u)
}

type PhotoURL string

func NewPhotoURL(value string) (PhotoURL, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("photo URL is required")
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return "", fmt.Errorf("invalid photo URL: %w", err)
	}
	return PhotoURL(trimmed), nil
}

func (u PhotoURL) String() string {
	return string(u)
}

type PhotoURLList []PhotoURL

func NewPhotoURLList(values []string, limit int) (PhotoURLList, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if limit > 0 && len(values) > limit {
		return nil, fmt.Errorf("photo URLs must be <= %d", limit)
	}
	result := make([]PhotoURL, 0, len(values))
	for _, raw := range values {
		urlValue, err := NewPhotoURL(raw)
		if err != nil {
			return nil, err
		}
		result = append(result, urlValue)
	}
	return PhotoURLList(result), nil
}

func (l PhotoURLList) Strings() []string {
	result := make([]string, 0, len(l))
	for _, v := range l {
		result = append(result, string(v))
	}
	return result
}

// CanonicalCategoryCode folds the aliases the legacy imports produced into
// one canonical code per category. It is the single source for the category
// taxonomy; request normalisation in the HTTP layer delegates here.
func CanonicalCategoryCode(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(strings.ReplaceAll(trimmed, " ", "_"))
	switch lower {
	case "coffee_shop", "coffeeshop", "coffee":
		return "cafe"
	case "diner", "eatery", "food":
		return "restaurant"
	case "pub", "tavern", "brewery":
		return "bar"
	case "gallery", "art_gallery", "exhibit":
		return "museum"
	case "green_space", "garden", "commons":
		return "park"
	case "trail_head", "hiking_trail", "hike":
		return "trailhead"
	case "overlook", "lookout", "vista":
		return "viewpoint"
	case "farmers_market", "bazaar":
		return "market"
	case "cinema", "movie_theater", "playhouse":
		return "theater"
	case "play_area":
		return "playground"
	}

	return lower
}

// AllowedPOITypes lists the accepted POI type selector values.
func AllowedPOITypes() []string {
	return append([]string(nil), allowedPOITypes...)
}

// AllowedAmenityTags lists the accepted amenity tags.
func AllowedAmenityTags() []string {
	return append([]string(nil), allowedAmenityTags...)
}
