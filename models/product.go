package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string   `gorm:"column:product_name;not null" json:"product_name"`
	Brand       string   `json:"brand"`
	Category    string   `gorm:"index" json:"category"`
	Price       float64  `gorm:"not null" json:"price"`
	SalePrice   *float64 `json:"sale_price,omitempty"` // discounted price, nil when not on sale
	Stock       int      `gorm:"column:stock_quantity" json:"stock_quantity"`
	Images      []string `gorm:"serializer:json" json:"product_images"`
	Sizes       []string `gorm:"serializer:json" json:"available_sizes"`
	Colors      []string `gorm:"serializer:json" json:"available_colors"`
	Featured    bool     `gorm:"default:false" json:"is_featured"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Description string   `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// InStock is derived from the stock count, never stored.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// EffectivePrice is the sale price when the product is on sale.
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil && *p.SalePrice > 0 {
		return *p.SalePrice
	}
	return p.Price
}
