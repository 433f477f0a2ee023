package recommendation

import (
	"math"
	"strings"

	"smartShop/domain"
)

// The blend of the two similarity signals.
const (
	weightTraditional = 0.4
	weightDescription = 0.6
)

// Component weights of the traditional breakdown, explanation only.
const (
	breakdownCategoryWeight = 0.4
	breakdownBrandWeight    = 0.3
	breakdownPriceWeight    = 0.2
	breakdownRatingWeight   = 0.1
)

// cosineSimilarity with zero-magnitude vectors defined as 0, not NaN.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// descriptionSimilarity scores a product's extracted features against every
// user item's features. Per item: the fraction of its keys that exist in the
// product map (case-insensitive) with an equal value, where any value in the
// multi-valued common preferences also counts. Averaged over items with a
// non-empty feature map; 0 when none have content.
func descriptionSimilarity(itemFeatures []domain.FeatureMap, common map[string][]string, product domain.FeatureMap) float64 {
	if len(product) == 0 {
		return 0
	}

	var total float64
	counted := 0

	for _, features := range itemFeatures {
		if len(features) == 0 {
			continue
		}

		matched := 0
		for key, value := range features {
			productValue, ok := lookupFeature(product, key)
			if !ok {
				continue
			}
			if featureValueMatches(value, productValue, common, key) {
				matched++
			}
		}

		total += float64(matched) / float64(len(features))
		counted++
	}

	if counted == 0 {
		return 0
	}

	return total / float64(counted)
}

func featureValueMatches(itemValue, productValue string, common map[string][]string, key string) bool {
	if strings.EqualFold(itemValue, productValue) {
		return true
	}
	for commonKey, values := range common {
		if !strings.EqualFold(commonKey, key) {
			continue
		}
		for _, v := range values {
			if strings.EqualFold(v, productValue) {
				return true
			}
		}
	}
	return false
}

// FeaturePair is a matched attribute surfaced in explanations.
type FeaturePair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// matchedFeaturePairs collects the deduplicated attribute/value pairs of the
// product that matched any user item, in the order they were found.
func matchedFeaturePairs(itemFeatures []domain.FeatureMap, common map[string][]string, product domain.FeatureMap) []FeaturePair {
	var pairs []FeaturePair
	seen := make(map[string]struct{})

	for _, features := range itemFeatures {
		for key, value := range features {
			productValue, ok := lookupFeature(product, key)
			if !ok {
				continue
			}
			if !featureValueMatches(value, productValue, common, key) {
				continue
			}

			dedup := strings.ToLower(key) + "=" + strings.ToLower(productValue)
			if _, ok := seen[dedup]; ok {
				continue
			}
			seen[dedup] = struct{}{}
			pairs = append(pairs, FeaturePair{Key: key, Value: productValue})
		}
	}

	return pairs
}

func blendSimilarity(traditional, description float64) float64 {
	return weightTraditional*traditional + weightDescription*description
}

// traditionalBreakdown explains which structured attributes pulled the
// traditional similarity up. It never feeds back into scoring.
type traditionalBreakdown struct {
	CategoryMatch    bool
	BrandMatch       bool
	PriceInRange     bool
	PriceSimilarity  float64
	RatingSimilarity float64

	// percentage contribution of each component to the breakdown score
	CategoryPct float64
	BrandPct    float64
	PricePct    float64
	RatingPct   float64
}

func buildTraditionalBreakdown(profile domain.UserProfile, p domain.Product) traditionalBreakdown {
	b := traditionalBreakdown{
		CategoryMatch: containsFold(profile.Categories, p.Category),
		BrandMatch:    containsFold(profile.Brands, p.Brand),
		PriceInRange:  p.Price >= profile.PriceRange.Min && p.Price <= profile.PriceRange.Max,
	}

	b.PriceSimilarity = relativeSimilarity(p.Price, profile.AvgPrice)
	b.RatingSimilarity = relativeSimilarity(p.Rating, profile.AvgRating)

	var categoryPart, brandPart float64
	if b.CategoryMatch {
		categoryPart = breakdownCategoryWeight
	}
	if b.BrandMatch {
		brandPart = breakdownBrandWeight
	}
	pricePart := breakdownPriceWeight * b.PriceSimilarity
	ratingPart := breakdownRatingWeight * b.RatingSimilarity

	score := categoryPart + brandPart + pricePart + ratingPart
	if score > 0 {
		b.CategoryPct = 100 * categoryPart / score
		b.BrandPct = 100 * brandPart / score
		b.PricePct = 100 * pricePart / score
		b.RatingPct = 100 * ratingPart / score
	}

	return b
}

// relativeSimilarity is 1 when v equals the reference and falls off linearly
// with the relative distance, floored at 0. A zero reference yields 0.
func relativeSimilarity(v, reference float64) float64 {
	if reference == 0 {
		return 0
	}
	sim := 1 - math.Abs(v-reference)/reference
	if sim < 0 {
		return 0
	}
	return sim
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
