package services

import (
	"context"
	"errors"

	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/app/repositories"
	"github.com/warungku/warung/pkg/cache"
	"github.com/warungku/warung/pkg/logger"
	"github.com/warungku/warung/pkg/orm"
	"gorm.io/gorm"
)

// ProductInput is the seller-facing payload for creating or updating a
// product. Price is in the smallest currency unit.
type ProductInput struct {
	Name          string `json:"name" validate:"required,max=255"`
	Price         int64  `json:"price" validate:"required,gt=0"`
	StockQuantity int    `json:"stock_quantity" validate:"gte=0"`
	ImageURL      string `json:"image_url" validate:"nullable,max=255"`
}

// RestockInput adds units to a product's stock.
type RestockInput struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// ProductService manages a seller's catalog. Every operation resolves the
// caller's store first and refuses to touch another store's products.
type ProductService struct {
	stores   *repositories.StoreRepository
	products *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		stores:   repositories.NewStoreRepository(),
		products: repositories.NewProductRepository(),
	}
}

func (s *ProductService) ownStore(userID uint) (models.Store, error) {
	store, err := s.stores.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Store{}, ErrNoStore
	}
	return store, err
}

// AddProduct creates a product in the seller's store.
func (s *ProductService) AddProduct(ctx context.Context, userID uint, in ProductInput) (models.Product, error) {
	store, err := s.ownStore(userID)
	if err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		StoreID:       store.ID,
		Name:          in.Name,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		ImageURL:      in.ImageURL,
		IsActive:      true,
	}
	if err := s.products.Create(&product); err != nil {
		return models.Product{}, err
	}

	invalidateCatalog(store.Slug)
	logger.WithCtx(ctx).Info("product added", "product_id", product.ID, "store_id", store.ID)
	return product, nil
}

// UpdateProduct replaces a product's seller-editable fields: name, price,
// image. Stock is deliberately not one of them — every stock mutation is a
// relative delta (Restock to add, the order-path decrement to spend), so a
// stale edit form can never resurrect units that were already sold.
func (s *ProductService) UpdateProduct(userID, productID uint, in ProductInput) (models.Product, error) {
	store, err := s.ownStore(userID)
	if err != nil {
		return models.Product{}, err
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ProductNotFoundError{ProductID: productID}
		}
		return models.Product{}, err
	}
	if product.StoreID != store.ID {
		return models.Product{}, ErrNotOwner
	}

	if err := s.products.UpdateDetails(productID, in.Name, in.Price, in.ImageURL); err != nil {
		return models.Product{}, err
	}

	invalidateCatalog(store.Slug)
	return s.products.FindByID(productID)
}

// Restock adds units to a product's stock with a relative update, so it
// composes safely with concurrent order decrements.
func (s *ProductService) Restock(userID, productID uint, in RestockInput) (models.Product, error) {
	store, err := s.ownStore(userID)
	if err != nil {
		return models.Product{}, err
	}

	err = orm.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND store_id = ?", productID, store.ID).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", in.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ProductNotFoundError{ProductID: productID}
		}
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}

	invalidateCatalog(store.Slug)
	return s.products.FindByID(productID)
}

// RemoveProduct deactivates a product. The row stays so order item history
// keeps its reference; it just can no longer be ordered.
func (s *ProductService) RemoveProduct(userID, productID uint) error {
	store, err := s.ownStore(userID)
	if err != nil {
		return err
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProductNotFoundError{ProductID: productID}
		}
		return err
	}
	if product.StoreID != store.ID {
		return ErrNotOwner
	}

	if err := s.products.Deactivate(productID); err != nil {
		return err
	}
	invalidateCatalog(store.Slug)
	return nil
}

// ListProducts returns the seller's full catalog, active or not.
func (s *ProductService) ListProducts(userID uint, page, limit int) ([]models.Product, orm.Pagination, error) {
	store, err := s.ownStore(userID)
	if err != nil {
		return nil, orm.Pagination{}, err
	}
	return s.products.FindByStore(store.ID, page, limit)
}

func invalidateCatalog(slug string) {
	_ = cache.Del(catalogCacheKey(slug))
}
