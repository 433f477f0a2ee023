package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smartShop/domain"
)

func TestCosineSimilarity_Identical(t *testing.T) {
	v := []float64{1, 0, 1, 0, 0.25, 0.8}

	assert.InDelta(t, 1.0, cosineSimilarity(v, v), 1e-9)
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity([]float64{1, 0}, []float64{0, 1}))
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity([]float64{0, 0}, []float64{1, 1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float64{1, 1}, []float64{0, 0}))
}

func TestCosineSimilarity_LengthMismatch(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity([]float64{1, 2}, []float64{1, 2, 3}))
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
}

func TestDescriptionSimilarity_Fraction(t *testing.T) {
	items := []domain.FeatureMap{
		{"RAM": "8GB", "Storage": "128GB"},
	}
	product := domain.FeatureMap{"RAM": "8GB", "Storage": "256GB"}

	// one of the item's two keys matches key and value
	assert.InDelta(t, 0.5, descriptionSimilarity(items, nil, product), 1e-9)
}

func TestDescriptionSimilarity_CaseInsensitive(t *testing.T) {
	items := []domain.FeatureMap{{"ram": "8gb"}}
	product := domain.FeatureMap{"RAM": "8GB"}

	assert.InDelta(t, 1.0, descriptionSimilarity(items, nil, product), 1e-9)
}

func TestDescriptionSimilarity_CommonPreferenceCounts(t *testing.T) {
	items := []domain.FeatureMap{{"Storage": "128GB"}}
	product := domain.FeatureMap{"Storage": "256GB"}
	common := map[string][]string{"Storage": {"128GB", "256GB"}}

	// the product value differs from the item's but is among the user's
	// multi-valued common preferences for that key
	assert.InDelta(t, 1.0, descriptionSimilarity(items, common, product), 1e-9)
}

func TestDescriptionSimilarity_AveragedOverItems(t *testing.T) {
	items := []domain.FeatureMap{
		{"RAM": "8GB"},
		{"RAM": "16GB"},
	}
	product := domain.FeatureMap{"RAM": "8GB"}

	assert.InDelta(t, 0.5, descriptionSimilarity(items, nil, product), 1e-9)
}

func TestDescriptionSimilarity_NoContent(t *testing.T) {
	items := []domain.FeatureMap{{"RAM": "8GB"}}

	assert.Equal(t, 0.0, descriptionSimilarity(items, nil, domain.FeatureMap{}))
	assert.Equal(t, 0.0, descriptionSimilarity(nil, nil, domain.FeatureMap{"RAM": "8GB"}))
	assert.Equal(t, 0.0, descriptionSimilarity([]domain.FeatureMap{{}}, nil, domain.FeatureMap{"RAM": "8GB"}))
}

func TestMatchedFeaturePairs_Dedup(t *testing.T) {
	items := []domain.FeatureMap{
		{"RAM": "8GB"},
		{"ram": "8gb", "Color": "Black"},
	}
	product := domain.FeatureMap{"RAM": "8GB", "Color": "Black"}

	pairs := matchedFeaturePairs(items, nil, product)

	assert.Len(t, pairs, 2)
	assert.Contains(t, pairs, FeaturePair{Key: "RAM", Value: "8GB"})
	assert.Contains(t, pairs, FeaturePair{Key: "Color", Value: "Black"})
}

func TestBlendSimilarity(t *testing.T) {
	assert.InDelta(t, 0.4*0.5+0.6*1.0, blendSimilarity(0.5, 1.0), 1e-9)
	assert.Equal(t, 0.0, blendSimilarity(0, 0))
	// blended similarity stays in [0, 1]
	assert.InDelta(t, 1.0, blendSimilarity(1, 1), 1e-9)
}

func TestBuildTraditionalBreakdown(t *testing.T) {
	profile := domain.UserProfile{
		Categories: []string{"Phone"},
		Brands:     []string{"X"},
		AvgPrice:   100,
		AvgRating:  4.0,
		PriceRange: domain.PriceRange{Min: 80, Max: 120},
	}
	p := domain.Product{Category: "phone", Brand: "X", Price: 110, Rating: 4.0}

	b := buildTraditionalBreakdown(profile, p)

	assert.True(t, b.CategoryMatch)
	assert.True(t, b.BrandMatch)
	assert.True(t, b.PriceInRange)
	assert.InDelta(t, 0.9, b.PriceSimilarity, 1e-9)
	assert.InDelta(t, 1.0, b.RatingSimilarity, 1e-9)

	// contribution percentages add up to 100
	assert.InDelta(t, 100, b.CategoryPct+b.BrandPct+b.PricePct+b.RatingPct, 1e-9)
}

func TestRelativeSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, relativeSimilarity(100, 100))
	assert.InDelta(t, 0.5, relativeSimilarity(150, 100), 1e-9)
	assert.Equal(t, 0.0, relativeSimilarity(500, 100))
	assert.Equal(t, 0.0, relativeSimilarity(100, 0))
}
