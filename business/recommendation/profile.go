package recommendation

import (
	"sort"
	"strings"

	"smartShop/domain"
)

const (
	// purchases considered when building the profile
	maxRecentPurchases = 10

	// share of user items a key/value pair must appear in to count as a
	// common feature
	commonFeatureShare = 0.2
)

// buildUserItems merges cart, viewed and purchased entries into one
// deduplicated user-item set. First occurrence wins, in priority order
// cart > viewed > purchased, with purchases capped at the most recent ten.
func buildUserItems(cart []domain.UserItem, viewed []domain.ViewedProduct, purchased []domain.PurchasedItem) []domain.UserItem {
	seen := make(map[uint64]struct{})
	items := make([]domain.UserItem, 0, len(cart)+len(viewed)+len(purchased))

	add := func(item domain.UserItem) {
		if _, ok := seen[item.ProductID]; ok {
			return
		}
		seen[item.ProductID] = struct{}{}
		items = append(items, item)
	}

	for _, item := range cart {
		add(item)
	}
	for _, v := range viewed {
		add(v.UserItem)
	}

	recent := make([]domain.PurchasedItem, len(purchased))
	copy(recent, purchased)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].PurchasedAt.After(recent[j].PurchasedAt)
	})
	if len(recent) > maxRecentPurchases {
		recent = recent[:maxRecentPurchases]
	}
	for _, p := range recent {
		add(p.UserItem)
	}

	return items
}

// buildUserProfile aggregates the deduplicated user items into the
// ephemeral per-request profile.
func buildUserProfile(items []domain.UserItem) domain.UserProfile {
	profile := domain.UserProfile{
		CommonFeatures: make(map[string][]string),
	}

	if len(items) == 0 {
		return profile
	}

	seenCategory := make(map[string]struct{})
	seenBrand := make(map[string]struct{})

	var priceSum, ratingSum float64

	for i, item := range items {
		if item.Category != "" {
			if _, ok := seenCategory[strings.ToLower(item.Category)]; !ok {
				seenCategory[strings.ToLower(item.Category)] = struct{}{}
				profile.Categories = append(profile.Categories, item.Category)
			}
		}
		if item.Brand != "" {
			if _, ok := seenBrand[strings.ToLower(item.Brand)]; !ok {
				seenBrand[strings.ToLower(item.Brand)] = struct{}{}
				profile.Brands = append(profile.Brands, item.Brand)
			}
		}

		priceSum += item.Price
		ratingSum += item.Rating

		if i == 0 {
			profile.PriceRange.Min, profile.PriceRange.Max = item.Price, item.Price
		} else {
			if item.Price < profile.PriceRange.Min {
				profile.PriceRange.Min = item.Price
			}
			if item.Price > profile.PriceRange.Max {
				profile.PriceRange.Max = item.Price
			}
		}
	}

	profile.AvgPrice = priceSum / float64(len(items))
	profile.AvgRating = ratingSum / float64(len(items))
	profile.CommonFeatures = commonFeatures(items)

	return profile
}

// commonFeatures returns the attribute key/value pairs that appear in at
// least 20% of the user's items. A key can carry multiple values.
func commonFeatures(items []domain.UserItem) map[string][]string {
	type pairCasing struct {
		key   string
		value string
	}

	counts := make(map[string]int)
	casing := make(map[string]pairCasing)

	for _, item := range items {
		features := ExtractFeatures(item.Description)
		for key, value := range features {
			id := strings.ToLower(key) + "=" + strings.ToLower(value)
			counts[id]++
			if _, ok := casing[id]; !ok {
				casing[id] = pairCasing{key: key, value: value}
			}
		}
	}

	threshold := commonFeatureShare * float64(len(items))
	common := make(map[string][]string)

	for id, count := range counts {
		if float64(count) < threshold {
			continue
		}
		pair := casing[id]
		common[pair.key] = append(common[pair.key], pair.value)
	}

	return common
}

// itemFeatureMaps extracts the per-item feature maps once per request so
// description similarity does not re-parse on every catalog product.
func itemFeatureMaps(items []domain.UserItem) []domain.FeatureMap {
	maps := make([]domain.FeatureMap, 0, len(items))
	for _, item := range items {
		features := ExtractFeatures(item.Description)
		if len(features) == 0 {
			continue
		}
		maps = append(maps, features)
	}
	return maps
}
