package recommendation

import (
	"math"
	"time"

	"smartShop/domain"
)

const (
	ReasonInCart              = "in_cart"
	ReasonPreviouslyPurchased = "previously_purchased"
	ReasonNewRecommendation   = "new_recommendation"
)

const (
	weightInCart        = 1.4
	weightPurchaseBase  = 1.35
	weightPurchaseFloor = 1.05
	weightNeutral       = 1.0

	// half-life style decay horizon for past purchases, in days
	purchaseDecayDays = 180.0
)

// InteractionSignal is the multiplicative weight of the user's prior
// relationship to a product plus the reason tag it yields.
type InteractionSignal struct {
	Weight            float64
	Reason            string
	DaysSincePurchase float64
}

// interactionWeight maps a product to its interaction weight. In-cart beats
// purchased; a purchase decays exponentially toward a floor slightly above
// neutral, so owning something never penalizes it.
func interactionWeight(productID uint64, cartIDs map[uint64]struct{}, purchases map[uint64]time.Time, now time.Time) InteractionSignal {
	if _, ok := cartIDs[productID]; ok {
		return InteractionSignal{Weight: weightInCart, Reason: ReasonInCart}
	}

	if purchasedAt, ok := purchases[productID]; ok {
		days := now.Sub(purchasedAt).Hours() / 24
		if days < 0 {
			days = 0
		}

		weight := weightPurchaseBase * math.Exp(-days/purchaseDecayDays)
		if weight < weightPurchaseFloor {
			weight = weightPurchaseFloor
		}

		return InteractionSignal{
			Weight:            weight,
			Reason:            ReasonPreviouslyPurchased,
			DaysSincePurchase: days,
		}
	}

	return InteractionSignal{Weight: weightNeutral, Reason: ReasonNewRecommendation}
}

// latestPurchases indexes purchase times by product id, keeping the most
// recent purchase when a product was bought more than once.
func latestPurchases(purchased []domain.PurchasedItem) map[uint64]time.Time {
	out := make(map[uint64]time.Time, len(purchased))
	for _, item := range purchased {
		if existing, ok := out[item.ProductID]; ok && existing.After(item.PurchasedAt) {
			continue
		}
		out[item.ProductID] = item.PurchasedAt
	}
	return out
}
