package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/warungku/warung/app/services"
	"github.com/warungku/warung/pkg/bind"
	"github.com/warungku/warung/pkg/middleware"
	"github.com/warungku/warung/pkg/response"
	"github.com/warungku/warung/pkg/ws"
)

// OrderController handles the public placement path and the seller's order
// management.
type OrderController struct {
	orders *services.OrderService
	stores *services.StoreService
}

func NewOrderController() *OrderController {
	return &OrderController{
		orders: services.NewOrderService(),
		stores: services.NewStoreService(),
	}
}

// Place creates a pickup order against /stores/{slug}/orders. No login:
// customers order anonymously with name, phone and pickup time.
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	var in services.PlaceOrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.PlaceOrder(r.Context(), chi.URLParam(r, "slug"), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, order)
}

// Track returns an order's public state by its code.
func (c *OrderController) Track(w http.ResponseWriter, r *http.Request) {
	order, err := c.orders.TrackOrder(chi.URLParam(r, "code"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, order)
}

// Index lists the seller's orders, optionally filtered by ?status=.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	orders, p, err := c.orders.ListStoreOrders(
		middleware.UserID(r.Context()), r.URL.Query().Get("status"), page, limit)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Paginated(w, orders, toPagination(p))
}

// UpdateStatus moves an order through its lifecycle.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status string `json:"status" validate:"required,in=RECEIVED,PREPARING,READY_FOR_PICKUP,COMPLETED,CANCELLED"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id, _ := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	order, err := c.orders.UpdateStatus(r.Context(), middleware.UserID(r.Context()), uint(id), in.Status)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, order)
}

// Feed upgrades to WebSocket and streams the seller's order events. Auth
// runs before the upgrade, so only the store owner can subscribe.
func (c *OrderController) Feed(w http.ResponseWriter, r *http.Request) {
	store, err := c.stores.MyStore(middleware.UserID(r.Context()))
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := ws.OrderFeed.Subscribe(w, r, store.ID); err != nil {
		fail(w, r, err)
	}
}
