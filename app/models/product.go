package models

import "gorm.io/gorm"

// Product belongs to exactly one store. Price is in the smallest currency
// unit. StockQuantity never goes negative: the order path mutates it only
// through the conditional decrement in ProductRepository, never by blind
// overwrite.
type Product struct {
	gorm.Model
	StoreID       uint   `gorm:"not null;index" json:"store_id"`
	Name          string `gorm:"size:255;not null" json:"name"`
	Price         int64  `gorm:"not null;default:0" json:"price"`
	StockQuantity int    `gorm:"not null;default:0" json:"stock_quantity"`
	ImageURL      string `gorm:"size:255" json:"image_url"`
	IsActive      bool   `gorm:"not null;default:true" json:"is_active"`
}
