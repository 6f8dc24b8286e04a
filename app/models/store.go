package models

import "gorm.io/gorm"

// Store is one merchant's storefront. Slug and StoreCode are globally
// unique, assigned once at creation and immutable afterwards: the slug is
// the public URL segment, the store code prefixes every order code.
type Store struct {
	gorm.Model
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Location  string `gorm:"size:255" json:"location"`
	Slug      string `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	StoreCode string `gorm:"uniqueIndex;size:5;not null" json:"store_code"`
}
