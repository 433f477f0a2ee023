package recommendation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartShop/domain"
)

func TestBuildUserItems_CartPrecedence(t *testing.T) {
	cart := []domain.UserItem{{ProductID: 1, Category: "Phone"}}
	viewed := []domain.ViewedProduct{
		{UserItem: domain.UserItem{ProductID: 1, Category: "Tablet"}},
		{UserItem: domain.UserItem{ProductID: 2, Category: "Tablet"}},
	}
	purchased := []domain.PurchasedItem{
		{UserItem: domain.UserItem{ProductID: 2, Category: "Laptop"}, PurchasedAt: time.Now()},
		{UserItem: domain.UserItem{ProductID: 3, Category: "Laptop"}, PurchasedAt: time.Now()},
	}

	items := buildUserItems(cart, viewed, purchased)

	require.Len(t, items, 3)
	assert.Equal(t, "Phone", items[0].Category)
	assert.Equal(t, "Tablet", items[1].Category)
	assert.Equal(t, "Laptop", items[2].Category)
}

func TestBuildUserItems_RecentPurchasesCapped(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var purchased []domain.PurchasedItem
	for i := 0; i < 15; i++ {
		purchased = append(purchased, domain.PurchasedItem{
			UserItem:    domain.UserItem{ProductID: uint64(i + 1)},
			PurchasedAt: base.AddDate(0, 0, i),
		})
	}

	items := buildUserItems(nil, nil, purchased)

	require.Len(t, items, 10)
	// the ten most recent purchases survive, newest first
	assert.Equal(t, uint64(15), items[0].ProductID)
	assert.Equal(t, uint64(6), items[9].ProductID)
}

func TestBuildUserProfile(t *testing.T) {
	items := []domain.UserItem{
		{ProductID: 1, Category: "Phone", Brand: "X", Price: 100, Rating: 4.0},
		{ProductID: 2, Category: "phone", Brand: "Y", Price: 200, Rating: 5.0},
		{ProductID: 3, Category: "Tablet", Brand: "X", Price: 300, Rating: 3.0},
	}

	profile := buildUserProfile(items)

	assert.Equal(t, []string{"Phone", "Tablet"}, profile.Categories)
	assert.Equal(t, []string{"X", "Y"}, profile.Brands)
	assert.InDelta(t, 200, profile.AvgPrice, 1e-9)
	assert.InDelta(t, 4.0, profile.AvgRating, 1e-9)
	assert.Equal(t, 100.0, profile.PriceRange.Min)
	assert.Equal(t, 300.0, profile.PriceRange.Max)
}

func TestBuildUserProfile_Empty(t *testing.T) {
	profile := buildUserProfile(nil)

	assert.Empty(t, profile.Categories)
	assert.Empty(t, profile.Brands)
	assert.Zero(t, profile.AvgPrice)
	assert.NotNil(t, profile.CommonFeatures)
}

func TestCommonFeatures_ShareThreshold(t *testing.T) {
	items := []domain.UserItem{
		{ProductID: 1, Description: "Color: Black, RAM: 8GB"},
		{ProductID: 2, Description: "Color: Black"},
		{ProductID: 3, Description: "Color: White"},
		{ProductID: 4, Description: ""},
		{ProductID: 5, Description: "plain text"},
	}

	common := commonFeatures(items)

	// threshold is 20% of 5 items, so a single occurrence qualifies
	assert.ElementsMatch(t, []string{"Black", "White"}, common["Color"])
	assert.Equal(t, []string{"8GB"}, common["RAM"])
}

func TestCommonFeatures_CaseFoldedCounting(t *testing.T) {
	var items []domain.UserItem
	for i := 0; i < 4; i++ {
		items = append(items, domain.UserItem{ProductID: uint64(i + 1), Description: "plain"})
	}
	items = append(items,
		domain.UserItem{ProductID: 5, Description: "Color: Black"},
		domain.UserItem{ProductID: 6, Description: fmt.Sprintf("color: %s", "BLACK")},
	)

	common := commonFeatures(items)

	// 2 of 6 items share the pair under case folding, above the 1.2
	// threshold, and the first-seen casing is kept
	assert.Equal(t, []string{"Black"}, common["Color"])
}

func TestItemFeatureMaps_SkipsEmpty(t *testing.T) {
	items := []domain.UserItem{
		{ProductID: 1, Description: "RAM: 8GB"},
		{ProductID: 2, Description: "no attributes"},
		{ProductID: 3, Description: ""},
	}

	maps := itemFeatureMaps(items)

	require.Len(t, maps, 1)
	assert.Equal(t, "8GB", maps[0]["RAM"])
}
