package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartShop/business/product"
	"smartShop/domain"
	"smartShop/pkg/logger"
)

type OrdersRepository interface {
	CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error)
	GetAllOrders(ctx context.Context, userID int) ([]domain.Orders, error)
	GetOrder(ctx context.Context, orderID, userID int) (domain.Orders, error)
	FindPurchaseHistory(ctx context.Context, userID uint) ([]domain.PurchasedItem, error)
}

type OrdersService struct {
	orderRepo    OrdersRepository
	productsRepo product.ProductRepository
}

func NewOrdersService(orderRepo OrdersRepository, productsRepo product.ProductRepository) *OrdersService {
	return &OrdersService{
		orderRepo:    orderRepo,
		productsRepo: productsRepo,
	}
}

func (s *OrdersService) CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return domain.Orders{}, fmt.Errorf("context error: %w", err)
	}

	if data.Quantity <= 0 {
		return domain.Orders{}, errors.New("quantity must be greater than 0")
	}

	p, err := s.productsRepo.FindByID(ctx, uint64(data.ProductID))
	if err != nil {
		logger.Error("Failed to find product for order", err)
		return domain.Orders{}, err
	}

	if p.Stock < data.Quantity {
		return domain.Orders{}, errors.New("insufficient stock")
	}

	data.PriceEach = p.Price
	data.Subtotal = p.Price * float64(data.Quantity)
	data.OrderStatus = "PENDING"
	data.CreatedAt = time.Now()
	data.UpdatedAt = time.Now()

	return s.orderRepo.CreateOrder(ctx, data)
}

func (s *OrdersService) GetAllOrders(ctx context.Context, userID int) ([]domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.orderRepo.GetAllOrders(ctx, userID)
}

func (s *OrdersService) GetOrder(ctx context.Context, orderID, userID int) (domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return domain.Orders{}, fmt.Errorf("context error: %w", err)
	}

	return s.orderRepo.GetOrder(ctx, orderID, userID)
}

// FindPurchaseHistory projects the user's orders as recommendation user
// items, newest first and deduplicated by product id.
func (s *OrdersService) FindPurchaseHistory(ctx context.Context, userID uint) ([]domain.PurchasedItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	items, err := s.orderRepo.FindPurchaseHistory(ctx, userID)
	if err != nil {
		logger.Error("Failed to load purchase history", err)
		return nil, fmt.Errorf("load purchase history: %w", err)
	}

	return items, nil
}
