package services

import (
	"errors"
	"time"

	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/app/repositories"
	"github.com/warungku/warung/pkg/cache"
	"gorm.io/gorm"
)

const catalogTTL = 60 * time.Second

func catalogCacheKey(slug string) string {
	return "catalog:" + slug
}

// Catalog is the public storefront view: the store plus its orderable
// products.
type Catalog struct {
	Store    models.Store     `json:"store"`
	Products []models.Product `json:"products"`
}

// CatalogService serves the customer-facing storefront. Reads go through a
// short Redis cache; catalog writes invalidate it.
type CatalogService struct {
	stores   *repositories.StoreRepository
	products *repositories.ProductRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		stores:   repositories.NewStoreRepository(),
		products: repositories.NewProductRepository(),
	}
}

// Browse resolves a store by slug and returns its active, in-stock
// products. The cached copy may lag a restock by up to the TTL; the order
// path never reads it, stock truth stays in the database.
func (s *CatalogService) Browse(slug string) (Catalog, error) {
	var catalog Catalog
	if cache.Get(catalogCacheKey(slug), &catalog) {
		return catalog, nil
	}

	store, err := s.stores.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Catalog{}, ErrStoreNotFound
		}
		return Catalog{}, err
	}

	products, err := s.products.FindActiveByStore(store.ID)
	if err != nil {
		return Catalog{}, err
	}

	catalog = Catalog{Store: store, Products: products}
	_ = cache.Set(catalogCacheKey(slug), catalog, catalogTTL)
	return catalog, nil
}
