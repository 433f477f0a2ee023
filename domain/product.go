package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_name TEXT NOT NULL,
//     brand        TEXT,
//     category     TEXT,
//     description  TEXT,
//     price        NUMERIC,
//     rating       NUMERIC,
//     num_reviews  INTEGER,
//     stock        INTEGER,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string    `gorm:"column:product_name;type:text" json:"product_name"`
	Brand       string    `gorm:"column:brand;type:text" json:"brand"`
	Category    string    `gorm:"column:category;type:text" json:"category"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Price       float64   `gorm:"column:price;type:numeric" json:"price"`
	Rating      float64   `gorm:"column:rating;type:numeric" json:"rating"`
	NumReviews  int       `gorm:"column:num_reviews;default:0" json:"num_reviews"`
	Stock       int       `gorm:"column:stock;default:0" json:"stock"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
