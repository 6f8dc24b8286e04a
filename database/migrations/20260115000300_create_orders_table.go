package migrations

import (
	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/pkg/migration"
	"gorm.io/gorm"
)

// Orders and their items migrate together; the pair is meaningless apart.
type CreateOrdersTable struct{}

func init() {
	migration.Register("20260115000300_create_orders_table", &CreateOrdersTable{})
}

func (CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.OrderItem{}, &models.Order{})
}
