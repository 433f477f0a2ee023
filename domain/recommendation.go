package domain

import "time"

// FeatureMap holds attribute key/value pairs parsed from a product
// description, e.g. {"RAM": "8GB", "Storage": "128GB"}. Keys keep their
// original casing; comparisons are done case-insensitively by the engine.
type FeatureMap map[string]string

// UserItem is a lightweight projection of a Product representing something
// the user interacted with (cart entry, purchase, or view).
type UserItem struct {
	ProductID   uint64  `json:"product_id"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
}

// ViewedProduct is a UserItem plus how many times the user opened it.
type ViewedProduct struct {
	UserItem
	ViewCount int `json:"view_count"`
}

// PurchasedItem is a UserItem plus when the purchase happened, used for
// the interaction weight decay.
type PurchasedItem struct {
	UserItem
	PurchasedAt time.Time `json:"purchased_at"`
}

// PriceRange is the min/max price across the items a profile was built from.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// UserProfile is derived per request from the user's cart, views and
// purchase history. It is ephemeral and never persisted.
type UserProfile struct {
	Categories     []string            `json:"categories"`
	Brands         []string            `json:"brands"`
	AvgPrice       float64             `json:"avg_price"`
	AvgRating      float64             `json:"avg_rating"`
	PriceRange     PriceRange          `json:"price_range"`
	CommonFeatures map[string][]string `json:"common_features"`
}

// Reason is a single human-readable justification for a recommendation.
type Reason struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// MatchingSummary breaks a score down into its signal components.
type MatchingSummary struct {
	Traditional float64 `json:"traditional"`
	Feature     float64 `json:"feature"`
	Interaction float64 `json:"interaction"`
}

type Explanation struct {
	Primary    string          `json:"primary"`
	Secondary  []string        `json:"secondary"`
	Reasons    []Reason        `json:"reasons"`
	Confidence int             `json:"confidence"`
	Matching   MatchingSummary `json:"matching"`
}

type ScoredProduct struct {
	Product
	Similarity                  float64     `json:"similarity"`
	InCart                      bool        `json:"in_cart"`
	PreviouslyPurchased         bool        `json:"previously_purchased"`
	ViewCount                   int         `json:"view_count"`
	ExploreToGetRecommendations bool        `json:"explore_to_get_recommendations,omitempty"`
	Explanation                 Explanation `json:"explanation"`
}

type RecommendationResult struct {
	Products      []ScoredProduct `json:"products"`
	Page          int             `json:"page"`
	Pages         int             `json:"pages"`
	IsExploreMode bool            `json:"is_explore_mode"`
	UserProfile   *UserProfile    `json:"user_profile,omitempty"`
}
