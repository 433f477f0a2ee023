package domain

import "time"

type Orders struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      int       `json:"user_id" gorm:"column:user_id;not null"`
	ProductID   int       `json:"product_id" gorm:"column:product_id;not null"`
	Quantity    int       `json:"quantity" gorm:"column:quantity"`
	PriceEach   float64   `json:"price_each" gorm:"column:price_each"`
	Subtotal    float64   `json:"subtotal" gorm:"column:subtotal"`
	OrderStatus string    `json:"order_status" gorm:"column:order_status"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Orders) TableName() string {
	return "orders"
}
