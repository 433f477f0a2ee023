package recommendation

import "smartShop/domain"

// CatalogStats is the catalog-wide context a feature vector is built
// against. It is recomputed from the catalog snapshot on every request and
// passed explicitly, never kept as package state.
type CatalogStats struct {
	Categories []string
	Brands     []string
	PriceMin   float64
	PriceMax   float64
	RatingMin  float64
	RatingMax  float64
}

// BuildCatalogStats collects the distinct categories, distinct brands and
// price/rating ranges of the catalog. Distinct values keep their order of
// first appearance so vector layouts are stable within a request.
func BuildCatalogStats(products []domain.Product) CatalogStats {
	stats := CatalogStats{}

	seenCategory := make(map[string]struct{})
	seenBrand := make(map[string]struct{})

	for i, p := range products {
		if _, ok := seenCategory[p.Category]; !ok {
			seenCategory[p.Category] = struct{}{}
			stats.Categories = append(stats.Categories, p.Category)
		}
		if _, ok := seenBrand[p.Brand]; !ok {
			seenBrand[p.Brand] = struct{}{}
			stats.Brands = append(stats.Brands, p.Brand)
		}

		if i == 0 {
			stats.PriceMin, stats.PriceMax = p.Price, p.Price
			stats.RatingMin, stats.RatingMax = p.Rating, p.Rating
			continue
		}
		if p.Price < stats.PriceMin {
			stats.PriceMin = p.Price
		}
		if p.Price > stats.PriceMax {
			stats.PriceMax = p.Price
		}
		if p.Rating < stats.RatingMin {
			stats.RatingMin = p.Rating
		}
		if p.Rating > stats.RatingMax {
			stats.RatingMax = p.Rating
		}
	}

	return stats
}

// normalize maps v into [0, 1] over [min, max]. A degenerate range (the
// whole catalog shares one price or rating) maps to the neutral 0.5 instead
// of dividing by zero. User items are caller-supplied and may fall outside
// the catalog's range, so values clamp to the bounds; this keeps every
// vector component non-negative and the cosine with it.
func normalize(v, min, max float64) float64 {
	if min == max {
		return 0.5
	}

	n := (v - min) / (max - min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// buildVector encodes a product or user item as
// one-hot(category) ++ one-hot(brand) ++ norm(price) ++ norm(rating).
func buildVector(category, brand string, price, rating float64, stats CatalogStats) []float64 {
	vec := make([]float64, 0, len(stats.Categories)+len(stats.Brands)+2)

	for _, c := range stats.Categories {
		if c == category {
			vec = append(vec, 1)
		} else {
			vec = append(vec, 0)
		}
	}
	for _, b := range stats.Brands {
		if b == brand {
			vec = append(vec, 1)
		} else {
			vec = append(vec, 0)
		}
	}

	vec = append(vec, normalize(price, stats.PriceMin, stats.PriceMax))
	vec = append(vec, normalize(rating, stats.RatingMin, stats.RatingMax))

	return vec
}

func productVector(p domain.Product, stats CatalogStats) []float64 {
	return buildVector(p.Category, p.Brand, p.Price, p.Rating, stats)
}

func itemVector(item domain.UserItem, stats CatalogStats) []float64 {
	return buildVector(item.Category, item.Brand, item.Price, item.Rating, stats)
}

// meanVector averages the per-item vectors into the user vector.
func meanVector(vectors [][]float64) []float64 {
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil
	}

	mean := make([]float64, len(vectors[0]))
	for _, v := range vectors {
		for i := range mean {
			mean[i] += v[i]
		}
	}
	for i := range mean {
		mean[i] /= float64(len(vectors))
	}

	return mean
}
