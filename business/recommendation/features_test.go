package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFeatures(t *testing.T) {
	features := ExtractFeatures("RAM: 8GB, Storage: 128GB; Color: Black")

	assert.Equal(t, "8GB", features["RAM"])
	assert.Equal(t, "128GB", features["Storage"])
	assert.Equal(t, "Black", features["Color"])
	assert.Len(t, features, 3)
}

func TestExtractFeatures_PreservesCasing(t *testing.T) {
	features := ExtractFeatures("ram: 8gb")

	assert.Equal(t, "8gb", features["ram"])
	_, ok := features["RAM"]
	assert.False(t, ok)
}

func TestExtractFeatures_EmptyAndMalformed(t *testing.T) {
	assert.Empty(t, ExtractFeatures(""))
	assert.Empty(t, ExtractFeatures("   "))
	assert.Empty(t, ExtractFeatures("just a plain description with no attributes"))
	assert.Empty(t, ExtractFeatures(",;,;"))
	assert.Empty(t, ExtractFeatures("::::"))
}

func TestExtractFeatures_RepeatedKeyLastWins(t *testing.T) {
	features := ExtractFeatures("Color: Red, Color: Blue")

	assert.Equal(t, "Blue", features["Color"])
	assert.Len(t, features, 1)
}

func TestExtractFeatures_ValueStopsAtDelimiter(t *testing.T) {
	// a colon inside a value acts as a delimiter, the tail is dropped
	features := ExtractFeatures("Aspect Ratio: 16:9, Panel: OLED")

	assert.Equal(t, "16", features["Aspect Ratio"])
	assert.Equal(t, "OLED", features["Panel"])
}

func TestLookupFeature_CaseInsensitive(t *testing.T) {
	features := ExtractFeatures("RAM: 8GB")

	v, ok := lookupFeature(features, "ram")
	assert.True(t, ok)
	assert.Equal(t, "8GB", v)

	_, ok = lookupFeature(features, "storage")
	assert.False(t, ok)
}
