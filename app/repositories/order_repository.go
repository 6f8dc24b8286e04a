package repositories

import (
	"time"

	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/pkg/orm"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for Order and OrderItem.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// OrderCodeExists reports whether an order code is already taken, reading
// through the placement transaction so the check and the insert see the
// same state. The unique index on order_code remains the final arbiter.
func (r *OrderRepository) OrderCodeExists(tx *gorm.DB, code string) (bool, error) {
	var count int64
	err := tx.Model(&models.Order{}).Where("order_code = ?", code).Count(&count).Error
	return count > 0, err
}

// Create persists the order header and all its items inside the given
// transaction. GORM inserts Items with the header's ID in one association
// pass.
func (r *OrderRepository) Create(tx *gorm.DB, order *models.Order) error {
	return tx.Create(order).Error
}

// FindByCode looks up an order, with items, by its public code.
func (r *OrderRepository) FindByCode(code string) (models.Order, error) {
	var order models.Order
	err := orm.Gorm().Preload("Items").Where("order_code = ?", code).First(&order).Error
	return order, err
}

// FindByID looks up an order, with items, by primary key.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := orm.Gorm().Preload("Items").First(&order, id).Error
	return order, err
}

// FindByStore returns a store's orders newest first, optionally filtered by
// status, paginated.
func (r *OrderRepository) FindByStore(storeID uint, status string, page, limit int) ([]models.Order, orm.Pagination, error) {
	q := orm.DB().
		Model(&models.Order{}).
		Where("store_id = ?", storeID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []models.Order
	pagination, err := q.Order("created_at DESC").GetWithPagination(&orders, page, limit)
	if err != nil {
		return nil, pagination, err
	}
	// Preload does not survive the pagination wrapper's count pass, so
	// items come in a second query keyed by the page's IDs.
	if len(orders) > 0 {
		ids := make([]uint, 0, len(orders))
		for _, o := range orders {
			ids = append(ids, o.ID)
		}
		var items []models.OrderItem
		if err := orm.Gorm().Where("order_id IN ?", ids).Find(&items).Error; err != nil {
			return nil, pagination, err
		}
		byOrder := make(map[uint][]models.OrderItem, len(orders))
		for _, it := range items {
			byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
		}
		for i := range orders {
			orders[i].Items = byOrder[orders[i].ID]
		}
	}
	return orders, pagination, nil
}

// UpdateStatus writes a new status on an order.
func (r *OrderRepository) UpdateStatus(id uint, status string) error {
	return orm.Gorm().Model(&models.Order{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}

// StoreStats is the dashboard aggregate for one store.
type StoreStats struct {
	TotalOrders     int64            `json:"total_orders"`
	OrdersToday     int64            `json:"orders_today"`
	RevenueGross    int64            `json:"revenue_gross"`
	OrdersByStatus  map[string]int64 `json:"orders_by_status"`
	ActiveProducts  int64            `json:"active_products"`
	OutOfStockCount int64            `json:"out_of_stock_count"`
}

// Stats aggregates order and product counters for the seller dashboard.
// Cancelled orders are excluded from revenue.
func (r *OrderRepository) Stats(storeID uint) (StoreStats, error) {
	stats := StoreStats{OrdersByStatus: make(map[string]int64)}
	db := orm.Gorm()

	if err := db.Model(&models.Order{}).
		Where("store_id = ?", storeID).
		Count(&stats.TotalOrders).Error; err != nil {
		return stats, err
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&models.Order{}).
		Where("store_id = ? AND created_at >= ?", storeID, startOfDay).
		Count(&stats.OrdersToday).Error; err != nil {
		return stats, err
	}

	// Revenue counts only completed pickups; pay-on-pickup means nothing
	// is earned until the customer collects.
	var revenue struct{ Total int64 }
	if err := db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount_gross), 0) AS total").
		Where("store_id = ? AND status = ?", storeID, models.StatusCompleted).
		Scan(&revenue).Error; err != nil {
		return stats, err
	}
	stats.RevenueGross = revenue.Total

	var byStatus []struct {
		Status string
		Count  int64
	}
	if err := db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Where("store_id = ?", storeID).
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return stats, err
	}
	for _, row := range byStatus {
		stats.OrdersByStatus[row.Status] = row.Count
	}

	if err := db.Model(&models.Product{}).
		Where("store_id = ? AND is_active = ?", storeID, true).
		Count(&stats.ActiveProducts).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.Product{}).
		Where("store_id = ? AND is_active = ? AND stock_quantity = 0", storeID, true).
		Count(&stats.OutOfStockCount).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
