package services

import (
	"context"
	"errors"

	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/app/repositories"
	"github.com/warungku/warung/pkg/codegen"
	"github.com/warungku/warung/pkg/logger"
	"github.com/warungku/warung/pkg/orm"
	"gorm.io/gorm"
)

// CreateStoreInput is what a seller submits to open their storefront.
type CreateStoreInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Location string `json:"location" validate:"nullable,max=255"`
}

// StoreService manages storefronts: one per seller account, with a unique
// slug and store code assigned at creation.
type StoreService struct {
	stores *repositories.StoreRepository
}

func NewStoreService() *StoreService {
	return &StoreService{stores: repositories.NewStoreRepository()}
}

// CreateStore opens the seller's storefront. The slug is derived from the
// name with numbered fallbacks on collision; the store code is random and
// regenerated on collision. Both are allocated and the row inserted in one
// transaction so a crash never leaks a reserved code.
func (s *StoreService) CreateStore(ctx context.Context, userID uint, in CreateStoreInput) (models.Store, error) {
	if _, err := s.stores.FindByUser(userID); err == nil {
		return models.Store{}, ErrStoreExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Store{}, err
	}

	var store models.Store
	err := orm.Transaction(func(tx *gorm.DB) error {
		slug, err := codegen.Allocate(codegen.SlugPolicy(in.Name), func(candidate string) (bool, error) {
			return s.stores.SlugExists(tx, candidate)
		})
		if err != nil {
			if errors.Is(err, codegen.ErrBudgetExhausted) {
				return ErrCodeAllocation
			}
			return err
		}

		code, err := codegen.Allocate(codegen.StoreCodePolicy(), func(candidate string) (bool, error) {
			return s.stores.StoreCodeExists(tx, candidate)
		})
		if err != nil {
			if errors.Is(err, codegen.ErrBudgetExhausted) {
				return ErrCodeAllocation
			}
			return err
		}

		store = models.Store{
			UserID:    userID,
			Name:      in.Name,
			Location:  in.Location,
			Slug:      slug,
			StoreCode: code,
		}
		return s.stores.Create(tx, &store)
	})
	if err != nil {
		return models.Store{}, err
	}

	logger.WithCtx(ctx).Info("store created", "store_id", store.ID, "slug", store.Slug, "store_code", store.StoreCode)
	return store, nil
}

// MyStore returns the seller's own storefront.
func (s *StoreService) MyStore(userID uint) (models.Store, error) {
	store, err := s.stores.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Store{}, ErrNoStore
	}
	return store, err
}

// UpdateStore changes the mutable fields of the seller's storefront. Slug
// and store code are immutable once assigned; order codes already issued
// reference them.
func (s *StoreService) UpdateStore(userID uint, in CreateStoreInput) (models.Store, error) {
	store, err := s.MyStore(userID)
	if err != nil {
		return models.Store{}, err
	}

	store.Name = in.Name
	store.Location = in.Location
	if err := s.stores.Save(&store); err != nil {
		return models.Store{}, err
	}
	return store, nil
}
