package services

import (
	"errors"

	"github.com/warungku/warung/app/repositories"
	"gorm.io/gorm"
)

// DashboardService aggregates seller-facing counters.
type DashboardService struct {
	stores *repositories.StoreRepository
	orders *repositories.OrderRepository
}

func NewDashboardService() *DashboardService {
	return &DashboardService{
		stores: repositories.NewStoreRepository(),
		orders: repositories.NewOrderRepository(),
	}
}

// Stats returns the dashboard aggregate for the seller's store.
func (s *DashboardService) Stats(userID uint) (repositories.StoreStats, error) {
	store, err := s.stores.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repositories.StoreStats{}, ErrNoStore
		}
		return repositories.StoreStats{}, err
	}
	return s.orders.Stats(store.ID)
}
