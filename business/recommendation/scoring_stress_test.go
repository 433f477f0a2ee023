//go:build !integration

package recommendation

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"smartShop/domain"
	"smartShop/pkg/config"
)

// scenario params
const (
	stressCatalogSize = 5000
	stressCartItems   = 5
	stressViewedItems = 20
	stressPurchases   = 30
	stressRequests    = 50
)

var stressCategories = []string{"Phone", "Tablet", "Laptop", "Audio", "Wearable"}
var stressBrands = []string{"X", "Y", "Z", "Acme", "Globex"}

func stressProduct(rng *rand.Rand, id uint64) domain.Product {
	return domain.Product{
		ID:          id,
		ProductName: fmt.Sprintf("Product %d", id),
		Category:    stressCategories[rng.Intn(len(stressCategories))],
		Brand:       stressBrands[rng.Intn(len(stressBrands))],
		Description: fmt.Sprintf("RAM: %dGB, Storage: %dGB, Color: Black", 4*(1+rng.Intn(4)), 64*(1+rng.Intn(8))),
		Price:       50 + rng.Float64()*1950,
		Rating:      1 + rng.Float64()*4,
		CreatedAt:   time.Now().AddDate(0, 0, -rng.Intn(365)),
	}
}

func TestScoringThroughput_LargeCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	catalog := make([]domain.Product, 0, stressCatalogSize)
	for i := 0; i < stressCatalogSize; i++ {
		catalog = append(catalog, stressProduct(rng, uint64(i+1)))
	}

	userItem := func(p domain.Product) domain.UserItem {
		return domain.UserItem{
			ProductID:   p.ID,
			Brand:       p.Brand,
			Category:    p.Category,
			Description: p.Description,
			Price:       p.Price,
			Rating:      p.Rating,
		}
	}

	var cart []domain.UserItem
	for i := 0; i < stressCartItems; i++ {
		cart = append(cart, userItem(catalog[rng.Intn(len(catalog))]))
	}
	var viewed []domain.ViewedProduct
	for i := 0; i < stressViewedItems; i++ {
		viewed = append(viewed, domain.ViewedProduct{
			UserItem:  userItem(catalog[rng.Intn(len(catalog))]),
			ViewCount: 1 + rng.Intn(10),
		})
	}
	var purchased []domain.PurchasedItem
	for i := 0; i < stressPurchases; i++ {
		purchased = append(purchased, domain.PurchasedItem{
			UserItem:    userItem(catalog[rng.Intn(len(catalog))]),
			PurchasedAt: time.Now().AddDate(0, 0, -rng.Intn(400)),
		})
	}

	svc := NewRecommendationService(
		&stubProductRepo{products: catalog},
		&stubHistoryRepo{purchases: purchased},
		config.RecoConfig{DefaultPageSize: 8, MaxPageSize: 50},
	)

	input := RecommendInput{
		CartItems:      cart,
		ViewedProducts: viewed,
		UserID:         1,
	}

	start := time.Now()
	for i := 0; i < stressRequests; i++ {
		result := svc.Recommend(context.Background(), input)

		if result.IsExploreMode {
			t.Fatal("explore mode with full signal present")
		}
		for _, sp := range result.Products {
			if sp.Similarity < 0 || sp.Similarity > 1.4 {
				t.Fatalf("similarity out of range: product=%d similarity=%f", sp.ID, sp.Similarity)
			}
		}
		for j := 1; j < len(result.Products); j++ {
			if result.Products[j].Similarity > result.Products[j-1].Similarity {
				t.Fatalf("page not sorted at position %d", j)
			}
		}
	}
	elapsed := time.Since(start)

	t.Logf("[SCORING] catalog=%d requests=%d total=%s per_request=%s",
		stressCatalogSize, stressRequests, elapsed, elapsed/stressRequests)
}
