package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warungku/warung/app/services"
	"github.com/warungku/warung/pkg/response"
)

// CatalogController serves the public storefront.
type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{catalog: services.NewCatalogService()}
}

// Show returns a store and its orderable products by slug.
func (c *CatalogController) Show(w http.ResponseWriter, r *http.Request) {
	catalog, err := c.catalog.Browse(chi.URLParam(r, "slug"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, catalog)
}
