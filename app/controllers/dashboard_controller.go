package controllers

import (
	"net/http"

	"github.com/warungku/warung/app/services"
	"github.com/warungku/warung/pkg/middleware"
	"github.com/warungku/warung/pkg/response"
)

// DashboardController serves the seller dashboard aggregate.
type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController() *DashboardController {
	return &DashboardController{dashboard: services.NewDashboardService()}
}

func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.dashboard.Stats(middleware.UserID(r.Context()))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, stats)
}
