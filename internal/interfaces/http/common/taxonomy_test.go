package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
)

func TestCanonicalCategoryCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"coffee shop", "cafe"},
		{"Pub", "bar"},
		{"gallery", "museum"},
		{"hiking_trail", "trailhead"},
		{"cafe", "cafe"},
		{"speakeasy", "speakeasy"},
		{"  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalCategoryCode(tt.input), tt.input)
	}
}

func TestTaxonomyAgreesWithDomain(t *testing.T) {
	assert.Equal(t, admindomain.AllowedAmenityTags(), AllowedAmenityTags)
	assert.Equal(t, admindomain.AllowedPOITypes(), AllowedPOITypes)

	for _, alias := range []string{"coffee shop", "pub", "gallery", "play_area"} {
		category, err := admindomain.NewCategory(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, string(category), CanonicalCategoryCode(alias), alias)
	}
}

func TestNormalizeCategoryListDeduplicates(t *testing.T) {
	got, err := NormalizeCategoryList([]string{"coffee shop", "cafe", "diner"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe", "restaurant"}, got)
}

func TestNormalizeCategoryListRequiresOne(t *testing.T) {
	_, err := NormalizeCategoryList([]string{" ", ""})
	assert.Error(t, err)
}

func TestNormalizeAmenityTags(t *testing.T) {
	got, err := NormalizeAmenityTags([]string{"WiFi", "parking", "parking"})
	require.NoError(t, err)
	assert.Equal(t, []string{"wifi", "parking"}, got)

	_, err = NormalizeAmenityTags([]string{"valet"})
	assert.Error(t, err)
}

func TestNormalizePOIType(t *testing.T) {
	got, err := NormalizePOIType(" Park ")
	require.NoError(t, err)
	assert.Equal(t, "park", got)

	_, err = NormalizePOIType("castle")
	assert.Error(t, err)
}
