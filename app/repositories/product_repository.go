package repositories

import (
	"errors"

	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/pkg/orm"
	"gorm.io/gorm"
)

// Stock ledger outcomes. A failed decrement is a business rejection, not a
// transient fault — callers roll back, they do not retry.
var (
	ErrProductNotFound   = errors.New("product not found or inactive")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductSnapshot is the row state the decrement proves: the price and name
// used for the order line, the owning store for the caller's ownership
// check, and the stock remaining after the decrement.
type ProductSnapshot struct {
	ProductID uint
	StoreID   uint
	Name      string
	Price     int64
	Remaining int
}

// ProductRepository handles database operations for Product, including the
// stock ledger used by order placement.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// DecrementStock atomically takes qty units off a product's stock.
//
// The precondition (enough stock, product active) and the mutation are one
// conditional UPDATE, so concurrent placements cannot both spend the same
// unit: the database serialises the writes and the loser sees zero rows
// affected. Never split this into a read followed by a write.
//
// tx must be the transaction handle of the surrounding placement so a later
// failure rolls the decrement back.
func (r *ProductRepository) DecrementStock(tx *gorm.DB, productID uint, qty int) (ProductSnapshot, error) {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND is_active = ? AND stock_quantity >= ?", productID, true, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if res.Error != nil {
		return ProductSnapshot{}, res.Error
	}

	if res.RowsAffected == 0 {
		// One extra read to tell "no such product" from "not enough
		// stock". Costs a query on the failure path only; the decrement
		// above stays a single conditional write either way.
		var count int64
		if err := tx.Model(&models.Product{}).
			Where("id = ? AND is_active = ?", productID, true).
			Count(&count).Error; err != nil {
			return ProductSnapshot{}, err
		}
		if count == 0 {
			return ProductSnapshot{}, ErrProductNotFound
		}
		return ProductSnapshot{}, ErrInsufficientStock
	}

	var product models.Product
	if err := tx.First(&product, productID).Error; err != nil {
		return ProductSnapshot{}, err
	}

	return ProductSnapshot{
		ProductID: product.ID,
		StoreID:   product.StoreID,
		Name:      product.Name,
		Price:     product.Price,
		Remaining: product.StockQuantity,
	}, nil
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.Gorm().First(&product, id).Error
	return product, err
}

// FindActiveByStore returns the store's orderable products: active and in
// stock.
func (r *ProductRepository) FindActiveByStore(storeID uint) ([]models.Product, error) {
	var products []models.Product
	err := orm.Gorm().
		Where("store_id = ? AND is_active = ? AND stock_quantity > 0", storeID, true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// FindByStore returns all of a store's products (seller view), paginated.
func (r *ProductRepository) FindByStore(storeID uint, page, limit int) ([]models.Product, orm.Pagination, error) {
	var products []models.Product
	pagination, err := orm.DB().
		Model(&models.Product{}).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		GetWithPagination(&products, page, limit)
	return products, pagination, err
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.Gorm().Create(product).Error
}

// UpdateDetails writes the seller-editable columns only. stock_quantity is
// never in the column list: stock changes are deltas through DecrementStock
// or the restock path, not overwrites from a possibly stale read.
func (r *ProductRepository) UpdateDetails(id uint, name string, price int64, imageURL string) error {
	return orm.Gorm().Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":      name,
			"price":     price,
			"image_url": imageURL,
		}).Error
}

// Deactivate soft-deletes a product from the ordering path.
func (r *ProductRepository) Deactivate(id uint) error {
	return orm.Gorm().Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("is_active", false).Error
}
