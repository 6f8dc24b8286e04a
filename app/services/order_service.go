package services

import (
	"context"
	"errors"
	"time"

	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/app/repositories"
	"github.com/warungku/warung/pkg/codegen"
	"github.com/warungku/warung/pkg/logger"
	"github.com/warungku/warung/pkg/metrics"
	"github.com/warungku/warung/pkg/orm"
	"github.com/warungku/warung/pkg/ws"
	"gorm.io/gorm"
)

// OrderLine is one requested line of a placement: which product, how many.
type OrderLine struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderInput is everything a customer submits to place a pickup order.
type PlaceOrderInput struct {
	CustomerName  string      `json:"customer_name" validate:"required,max=255"`
	CustomerPhone string      `json:"customer_phone" validate:"required,max=32"`
	PickupTime    time.Time   `json:"pickup_time" validate:"required"`
	Lines         []OrderLine `json:"lines" validate:"required"`
}

// OrderService coordinates order placement and the order lifecycle.
type OrderService struct {
	stores   *repositories.StoreRepository
	products *repositories.ProductRepository
	orders   *repositories.OrderRepository
}

func NewOrderService() *OrderService {
	return &OrderService{
		stores:   repositories.NewStoreRepository(),
		products: repositories.NewProductRepository(),
		orders:   repositories.NewOrderRepository(),
	}
}

// PlaceOrder creates a pickup order against the store identified by slug.
//
// All stock decrements, the code allocation and the order insert happen in
// one transaction: either the customer gets a complete order with a code,
// or nothing changed. A line failing mid-way (unknown product, other
// store's product, not enough stock) rolls back the decrements already
// applied for earlier lines.
func (s *OrderService) PlaceOrder(ctx context.Context, slug string, in PlaceOrderInput) (models.Order, error) {
	store, err := s.stores.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrStoreNotFound
		}
		return models.Order{}, err
	}

	if err := validateLines(in.Lines); err != nil {
		return models.Order{}, err
	}

	var order models.Order
	err = orm.Transaction(func(tx *gorm.DB) error {
		var total int64
		items := make([]models.OrderItem, 0, len(in.Lines))

		for _, line := range in.Lines {
			snap, err := s.products.DecrementStock(tx, line.ProductID, line.Quantity)
			if err != nil {
				switch {
				case errors.Is(err, repositories.ErrProductNotFound):
					return ProductNotFoundError{ProductID: line.ProductID}
				case errors.Is(err, repositories.ErrInsufficientStock):
					metrics.StockRejections.Inc()
					return InsufficientStockError{ProductID: line.ProductID}
				}
				return err
			}

			// A product from another store is indistinguishable from a
			// missing one; the decrement still rolls back with the tx.
			if snap.StoreID != store.ID {
				return ProductNotFoundError{ProductID: line.ProductID}
			}

			total += snap.Price * int64(line.Quantity)
			items = append(items, models.OrderItem{
				ProductID:    snap.ProductID,
				Name:         snap.Name,
				Quantity:     line.Quantity,
				PriceAtOrder: snap.Price,
			})
		}

		code, err := codegen.Allocate(
			codegen.OrderCodePolicy(store.StoreCode, time.Now()),
			func(candidate string) (bool, error) {
				return s.orders.OrderCodeExists(tx, candidate)
			},
		)
		if err != nil {
			if errors.Is(err, codegen.ErrBudgetExhausted) {
				return ErrCodeAllocation
			}
			return err
		}

		order = models.Order{
			StoreID:          store.ID,
			OrderCode:        code,
			CustomerName:     in.CustomerName,
			CustomerPhone:    in.CustomerPhone,
			PickupTime:       in.PickupTime,
			Status:           models.StatusReceived,
			TotalAmountGross: total,
			Items:            items,
		}
		return s.orders.Create(tx, &order)
	})
	if err != nil {
		return models.Order{}, err
	}

	metrics.OrdersPlaced.Inc()
	logger.WithCtx(ctx).Info("order placed",
		"order_code", order.OrderCode,
		"store_id", store.ID,
		"lines", len(order.Items),
		"total", order.TotalAmountGross,
	)
	ws.OrderFeed.Publish(store.ID, order)

	return order, nil
}

func validateLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return InvalidLineError{Reason: "order has no lines"}
	}
	seen := make(map[uint]bool, len(lines))
	for _, line := range lines {
		if line.ProductID == 0 {
			return InvalidLineError{ProductID: line.ProductID, Reason: "missing product id"}
		}
		if line.Quantity < 1 {
			return InvalidLineError{ProductID: line.ProductID, Reason: "quantity must be at least 1"}
		}
		if seen[line.ProductID] {
			return InvalidLineError{ProductID: line.ProductID, Reason: "duplicate product line"}
		}
		seen[line.ProductID] = true
	}
	return nil
}

// TrackOrder returns the customer-facing view of an order by its code.
func (s *OrderService) TrackOrder(code string) (models.Order, error) {
	order, err := s.orders.FindByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, ErrOrderNotFound
	}
	return order, err
}

// ListStoreOrders returns a seller's orders newest first, optionally
// filtered by status.
func (s *OrderService) ListStoreOrders(userID uint, status string, page, limit int) ([]models.Order, orm.Pagination, error) {
	store, err := s.stores.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, orm.Pagination{}, ErrNoStore
		}
		return nil, orm.Pagination{}, err
	}
	return s.orders.FindByStore(store.ID, status, page, limit)
}

// transitions is the order lifecycle: forward through fulfilment, with
// cancellation allowed from any non-terminal state.
var transitions = map[string][]string{
	models.StatusReceived:       {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing:      {models.StatusReadyForPickup, models.StatusCancelled},
	models.StatusReadyForPickup: {models.StatusCompleted, models.StatusCancelled},
}

// UpdateStatus moves a seller's order through its lifecycle. Invalid target
// statuses and skipped steps are rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, userID, orderID uint, status string) (models.Order, error) {
	store, err := s.stores.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNoStore
		}
		return models.Order{}, err
	}

	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}
	if order.StoreID != store.ID {
		return models.Order{}, ErrNotOwner
	}

	allowed := false
	for _, next := range transitions[order.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return models.Order{}, InvalidTransitionError{From: order.Status, To: status}
	}

	if err := s.orders.UpdateStatus(order.ID, status); err != nil {
		return models.Order{}, err
	}
	prev := order.Status
	order.Status = status

	logger.WithCtx(ctx).Info("order status updated",
		"order_code", order.OrderCode, "from", prev, "to", status)
	ws.OrderFeed.Publish(store.ID, order)

	return order, nil
}
