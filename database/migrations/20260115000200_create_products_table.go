package migrations

import (
	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/pkg/migration"
	"gorm.io/gorm"
)

type CreateProductsTable struct{}

func init() {
	migration.Register("20260115000200_create_products_table", &CreateProductsTable{})
}

func (CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Product{})
}
