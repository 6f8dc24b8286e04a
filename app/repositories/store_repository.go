package repositories

import (
	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/pkg/orm"
	"gorm.io/gorm"
)

// StoreRepository handles database operations for Store.
type StoreRepository struct{}

func NewStoreRepository() *StoreRepository {
	return &StoreRepository{}
}

// FindByID looks up a store by primary key.
func (r *StoreRepository) FindByID(id uint) (models.Store, error) {
	var store models.Store
	err := orm.Gorm().First(&store, id).Error
	return store, err
}

// FindBySlug resolves a store from its public URL segment.
func (r *StoreRepository) FindBySlug(slug string) (models.Store, error) {
	var store models.Store
	err := orm.Gorm().Where("slug = ?", slug).First(&store).Error
	return store, err
}

// FindByUser returns the store owned by a seller account.
func (r *StoreRepository) FindByUser(userID uint) (models.Store, error) {
	var store models.Store
	err := orm.Gorm().Where("user_id = ?", userID).First(&store).Error
	return store, err
}

// SlugExists reports whether a slug is already taken, reading through the
// creation transaction so the check and the insert see the same state.
func (r *StoreRepository) SlugExists(tx *gorm.DB, slug string) (bool, error) {
	var count int64
	err := tx.Model(&models.Store{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// StoreCodeExists reports whether a store code is already taken, reading
// through the creation transaction.
func (r *StoreRepository) StoreCodeExists(tx *gorm.DB, code string) (bool, error) {
	var count int64
	err := tx.Model(&models.Store{}).Where("store_code = ?", code).Count(&count).Error
	return count > 0, err
}

// Create persists a new store inside the given transaction.
func (r *StoreRepository) Create(tx *gorm.DB, store *models.Store) error {
	return tx.Create(store).Error
}

// Save persists changes to an existing store.
func (r *StoreRepository) Save(store *models.Store) error {
	return orm.Gorm().Save(store).Error
}
