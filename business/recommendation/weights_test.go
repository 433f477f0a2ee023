package recommendation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"smartShop/domain"
)

func TestInteractionWeight_InCart(t *testing.T) {
	now := time.Now()
	cart := map[uint64]struct{}{7: {}}
	purchases := map[uint64]time.Time{7: now.AddDate(0, 0, -1)}

	signal := interactionWeight(7, cart, purchases, now)

	// in-cart wins even when the product was also purchased
	assert.Equal(t, ReasonInCart, signal.Reason)
	assert.Equal(t, 1.4, signal.Weight)
}

func TestInteractionWeight_PurchaseDecay(t *testing.T) {
	now := time.Now()
	purchases := map[uint64]time.Time{
		1: now.AddDate(0, 0, -1),
		2: now.AddDate(0, 0, -300),
	}

	recent := interactionWeight(1, nil, purchases, now)
	old := interactionWeight(2, nil, purchases, now)

	assert.Equal(t, ReasonPreviouslyPurchased, recent.Reason)
	assert.Equal(t, ReasonPreviouslyPurchased, old.Reason)

	// a fresh purchase boosts more than an old one, but neither drops
	// below the floor
	assert.Greater(t, recent.Weight, old.Weight)
	assert.InDelta(t, 1.34, recent.Weight, 0.01)
	assert.Equal(t, 1.05, old.Weight)
	assert.InDelta(t, 1.0, recent.DaysSincePurchase, 0.01)
}

func TestInteractionWeight_FuturePurchaseClamped(t *testing.T) {
	now := time.Now()
	purchases := map[uint64]time.Time{1: now.Add(time.Hour)}

	signal := interactionWeight(1, nil, purchases, now)

	assert.Equal(t, 0.0, signal.DaysSincePurchase)
	assert.Equal(t, 1.35, signal.Weight)
}

func TestInteractionWeight_Neutral(t *testing.T) {
	signal := interactionWeight(99, nil, nil, time.Now())

	assert.Equal(t, ReasonNewRecommendation, signal.Reason)
	assert.Equal(t, 1.0, signal.Weight)
}

func TestLatestPurchases_KeepsMostRecent(t *testing.T) {
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	purchases := latestPurchases([]domain.PurchasedItem{
		{UserItem: domain.UserItem{ProductID: 1}, PurchasedAt: older},
		{UserItem: domain.UserItem{ProductID: 1}, PurchasedAt: newer},
		{UserItem: domain.UserItem{ProductID: 2}, PurchasedAt: newer},
		{UserItem: domain.UserItem{ProductID: 2}, PurchasedAt: older},
	})

	assert.Equal(t, newer, purchases[1])
	assert.Equal(t, newer, purchases[2])
}
