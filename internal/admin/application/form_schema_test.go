package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
)

func sectionIDs(sections []FormSection) []string {
	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestFormSchemaOrdering(t *testing.T) {
	business, err := FormSchema(admindomain.POIType("business"))
	require.NoError(t, err)
	assert.Equal(t, []string{"identity", "location", "contact", "classification", "hours", "photos"}, sectionIDs(business))

	trail, err := FormSchema(admindomain.POIType("trail"))
	require.NoError(t, err)
	assert.Equal(t, []string{"identity", "location", "trail", "classification", "hours", "photos"}, sectionIDs(trail))
}

func TestFormSchemaEveryTypeIncludesHours(t *testing.T) {
	for _, poiType := range []string{"business", "park", "trail", "event"} {
		sections, err := FormSchema(admindomain.POIType(poiType))
		require.NoError(t, err, "type %s", poiType)
		assert.Contains(t, sectionIDs(sections), "hours", "type %s", poiType)
	}
}

func TestFormSchemaUnknownType(t *testing.T) {
	_, err := FormSchema(admindomain.POIType("castle"))
	assert.Error(t, err)
}

func TestFormSchemaSectionsAreDefined(t *testing.T) {
	// Every id referenced by the order table must exist in the section map.
	for poiType, ids := range sectionOrder {
		for _, id := range ids {
			_, ok := formSections[id]
			assert.True(t, ok, "type %s references undefined section %s", poiType, id)
		}
	}
}
