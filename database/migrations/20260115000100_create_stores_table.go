package migrations

import (
	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/pkg/migration"
	"gorm.io/gorm"
)

type CreateStoresTable struct{}

func init() {
	migration.Register("20260115000100_create_stores_table", &CreateStoresTable{})
}

func (CreateStoresTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Store{})
}

func (CreateStoresTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Store{})
}
