// Package seeders populates a development database with demo data.
package seeders

import (
	"fmt"

	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/pkg/auth"
	"gorm.io/gorm"
)

// Run seeds a demo seller with a store and a small menu. Safe to run more
// than once: it skips when the demo account already exists.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "demo@warung.test").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Demo data already seeded.")
		return nil
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	user := models.User{Name: "Bu Tini", Email: "demo@warung.test", Password: hash}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	store := models.Store{
		UserID:    user.ID,
		Name:      "Warung Bu Tini",
		Location:  "Jl. Melati No. 3",
		Slug:      "warung-bu-tini",
		StoreCode: "WTINI",
	}
	if err := db.Create(&store).Error; err != nil {
		return err
	}

	products := []models.Product{
		{StoreID: store.ID, Name: "Nasi Goreng", Price: 15000, StockQuantity: 20, IsActive: true},
		{StoreID: store.ID, Name: "Mie Ayam", Price: 12000, StockQuantity: 15, IsActive: true},
		{StoreID: store.ID, Name: "Es Teh Manis", Price: 5000, StockQuantity: 50, IsActive: true},
		{StoreID: store.ID, Name: "Ayam Geprek", Price: 18000, StockQuantity: 10, IsActive: true},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	fmt.Printf("Seeded demo store %q with %d products.\n", store.Slug, len(products))
	return nil
}
