package common

import (
	"errors"
	"fmt"
	"strings"

	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
)

// The taxonomy itself lives with the admin domain value objects; this file
// only adapts it for request normalisation so the two cannot drift.
var (
	AllowedAmenityTags = admindomain.AllowedAmenityTags()
	AllowedPOITypes    = admindomain.AllowedPOITypes()

	allowedAmenityTagSet = makeStringSet(AllowedAmenityTags)
	allowedPOITypeSet    = makeStringSet(AllowedPOITypes)
)

func makeStringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set[item] = struct{}{}
	}
	return set
}

// CanonicalCategoryCode normalises the aliases legacy imports produced into
// one canonical code per category.
func CanonicalCategoryCode(input string) string {
	return admindomain.CanonicalCategoryCode(input)
}

// CanonicalCategoryCodes de-duplicates and cleans category codes.
func CanonicalCategoryCodes(codes []string) []string {
	result := make([]string, 0, len(codes))
	seen := make(map[string]struct{})
	for _, code := range codes {
		canonical := CanonicalCategoryCode(code)
		if canonical == "" {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		result = append(result, canonical)
	}
	return result
}

// NormalizeCategoryList validates and normalizes category inputs.
func NormalizeCategoryList(values []string) ([]string, error) {
	result := CanonicalCategoryCodes(values)
	if len(result) == 0 {
		return nil, errors.New("at least one category is required")
	}
	return result, nil
}

// NormalizePOIType validates the POI type selector.
func NormalizePOIType(value string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "", nil
	}
	if _, ok := allowedPOITypeSet[trimmed]; !ok {
		return "", fmt.Errorf("invalid poi type: %s", value)
	}
	return trimmed, nil
}

// NormalizeAmenityTags validates amenity tag selections.
func NormalizeAmenityTags(tags []string) ([]string, error) {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{})
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := allowedAmenityTagSet[tag]; !ok {
			return nil, fmt.Errorf("invalid amenity tag: %s", tag)
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result, nil
}
