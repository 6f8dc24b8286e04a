package controllers

import (
	"net/http"

	"github.com/warungku/warung/app/services"
	"github.com/warungku/warung/pkg/bind"
	"github.com/warungku/warung/pkg/middleware"
	"github.com/warungku/warung/pkg/response"
)

// StoreController handles the seller's storefront.
type StoreController struct {
	stores *services.StoreService
}

func NewStoreController() *StoreController {
	return &StoreController{stores: services.NewStoreService()}
}

func (c *StoreController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateStoreInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	store, err := c.stores.CreateStore(r.Context(), middleware.UserID(r.Context()), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, store)
}

func (c *StoreController) Show(w http.ResponseWriter, r *http.Request) {
	store, err := c.stores.MyStore(middleware.UserID(r.Context()))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, store)
}

func (c *StoreController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.CreateStoreInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	store, err := c.stores.UpdateStore(middleware.UserID(r.Context()), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, store)
}
