package postgres

import (
	"context"
	"errors"
	"fmt"
	"smartShop/domain"
	"sort"
	"time"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{DB: db}
}

func (r *OrdersRepository) CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return domain.Orders{}, fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&data).Error; err != nil {
		return domain.Orders{}, fmt.Errorf("failed to create order: %w", err)
	}

	return data, nil
}

func (r *OrdersRepository) GetAllOrders(ctx context.Context, userID int) ([]domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Orders
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) GetOrder(ctx context.Context, orderID, userID int) (domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return domain.Orders{}, fmt.Errorf("context error: %w", err)
	}

	var order domain.Orders
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Orders{}, errors.New("order not found")
		}
		return domain.Orders{}, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

type purchaseHistoryRow struct {
	ProductID   uint64    `gorm:"column:product_id"`
	Brand       string    `gorm:"column:brand"`
	Category    string    `gorm:"column:category"`
	Description string    `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	Rating      float64   `gorm:"column:rating"`
	PurchasedAt time.Time `gorm:"column:purchased_at"`
}

// FindPurchaseHistory joins orders with products, newest purchase first,
// one row per product.
func (r *OrdersRepository) FindPurchaseHistory(ctx context.Context, userID uint) ([]domain.PurchasedItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []purchaseHistoryRow
	err := r.DB.WithContext(ctx).
		Table("orders").
		Select("DISTINCT ON (orders.product_id) orders.product_id, products.brand, products.category, products.description, products.price, products.rating, orders.created_at AS purchased_at").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.user_id = ?", userID).
		Order("orders.product_id, orders.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase history: %w", err)
	}

	items := make([]domain.PurchasedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.PurchasedItem{
			UserItem: domain.UserItem{
				ProductID:   row.ProductID,
				Brand:       row.Brand,
				Category:    row.Category,
				Description: row.Description,
				Price:       row.Price,
				Rating:      row.Rating,
			},
			PurchasedAt: row.PurchasedAt,
		})
	}

	// DISTINCT ON ordering is per product; callers expect newest first
	sort.Slice(items, func(i, j int) bool {
		return items[i].PurchasedAt.After(items[j].PurchasedAt)
	})

	return items, nil
}
