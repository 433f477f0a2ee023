package recommendation

import (
	"fmt"
	"math"
	"strings"

	"smartShop/domain"
)

const (
	strongMatchThreshold = 0.7
	mediumMatchThreshold = 0.4

	maxStrongFeaturePairs = 3
	maxMediumFeaturePairs = 2

	fallbackPrimary    = "Recommended for you"
	exploreExplanation = "New products for you to discover"
)

// buildExplanation assembles the ordered reason list for one scored product.
// User-action reasons come first, then traditional matches, then feature
// matches, each gated by their similarity thresholds.
func buildExplanation(
	p domain.Product,
	breakdown traditionalBreakdown,
	traditional, description, base float64,
	signal InteractionSignal,
	pairs []FeaturePair,
) domain.Explanation {

	var reasons []domain.Reason

	switch signal.Reason {
	case ReasonInCart:
		reasons = append(reasons, domain.Reason{
			Type:    ReasonInCart,
			Message: "Currently in your cart",
		})
	case ReasonPreviouslyPurchased:
		reasons = append(reasons, domain.Reason{
			Type:    ReasonPreviouslyPurchased,
			Message: fmt.Sprintf("You purchased this %d days ago", int(signal.DaysSincePurchase)),
		})
	}

	reasons = append(reasons, traditionalReasons(p, breakdown, traditional)...)
	reasons = append(reasons, featureReasons(description, pairs)...)

	// the raw product can exceed 100 when a strong base meets the cart
	// boost; confidence is reported on a 0-100 scale
	confidence := int(math.Round(base * signal.Weight * 100))
	if confidence > 100 {
		confidence = 100
	}

	explanation := domain.Explanation{
		Reasons:    reasons,
		Confidence: confidence,
		Matching: domain.MatchingSummary{
			Traditional: traditional,
			Feature:     description,
			Interaction: signal.Weight,
		},
	}

	if len(reasons) == 0 {
		explanation.Primary = fallbackPrimary
		return explanation
	}

	explanation.Primary = reasons[0].Message
	for _, r := range reasons[1:] {
		explanation.Secondary = append(explanation.Secondary, r.Message)
	}

	return explanation
}

func traditionalReasons(p domain.Product, breakdown traditionalBreakdown, traditional float64) []domain.Reason {
	if traditional <= mediumMatchThreshold {
		return nil
	}

	strong := traditional > strongMatchThreshold

	var reasons []domain.Reason

	if breakdown.CategoryMatch {
		msg := fmt.Sprintf("Similar to your interests in %s", p.Category)
		if strong {
			msg = fmt.Sprintf("Strongly matches your interest in %s", p.Category)
		}
		reasons = append(reasons, domain.Reason{Type: "category_match", Message: msg})
	}

	if breakdown.BrandMatch {
		msg := fmt.Sprintf("From %s, a brand you shop", p.Brand)
		if strong {
			msg = fmt.Sprintf("From %s, one of your favorite brands", p.Brand)
		}
		reasons = append(reasons, domain.Reason{Type: "brand_match", Message: msg})
	}

	if breakdown.PriceInRange {
		reasons = append(reasons, domain.Reason{
			Type:    "price_match",
			Message: "Priced within your usual range",
		})
	}

	if breakdown.RatingSimilarity > strongMatchThreshold {
		reasons = append(reasons, domain.Reason{
			Type:    "rating_match",
			Message: "Rated like the products you buy",
		})
	}

	return reasons
}

func featureReasons(description float64, pairs []FeaturePair) []domain.Reason {
	if description <= mediumMatchThreshold || len(pairs) == 0 {
		return nil
	}

	limit := maxMediumFeaturePairs
	msg := "Shares features with products you like"
	if description > strongMatchThreshold {
		limit = maxStrongFeaturePairs
		msg = "Matches the features you look for"
	}
	if limit > len(pairs) {
		limit = len(pairs)
	}

	listed := make([]string, 0, limit)
	for _, pair := range pairs[:limit] {
		listed = append(listed, pair.Key+" "+pair.Value)
	}

	return []domain.Reason{{
		Type:    "feature_match",
		Message: msg + ": " + strings.Join(listed, ", "),
	}}
}

// exploreExplanationFor is the fixed explanation attached to every product
// in explore mode.
func exploreExplanationFor() domain.Explanation {
	return domain.Explanation{
		Primary: exploreExplanation,
		Reasons: []domain.Reason{{
			Type:    "explore",
			Message: exploreExplanation,
		}},
	}
}
