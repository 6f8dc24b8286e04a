// Package routes wires every HTTP endpoint to its controller.
package routes

import (
	"net/http"
	"time"

	"github.com/warungku/warung/app/controllers"
	"github.com/warungku/warung/pkg/metrics"
	"github.com/warungku/warung/pkg/middleware"
	"github.com/warungku/warung/pkg/response"
	"github.com/warungku/warung/pkg/router"
)

// Register mounts all API routes. Public endpoints (storefront, order
// placement, tracking) need no token; everything under the seller group
// does.
func Register(r *router.Router) {
	authC := controllers.NewAuthController()
	catalogC := controllers.NewCatalogController()
	orderC := controllers.NewOrderController()
	storeC := controllers.NewStoreController()
	productC := controllers.NewProductController()
	dashC := controllers.NewDashboardController()

	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
	r.HandleFunc("/metrics", metrics.Handler())

	api := r.Group("/api/v1")

	// Public: anonymous customers browse, order, track.
	api.Post("/auth/register", "auth.register", authC.Register)
	api.Post("/auth/login", "auth.login", authC.Login)
	api.Post("/auth/refresh", "auth.refresh", authC.Refresh)
	api.Get("/stores/{slug}", "catalog.show", catalogC.Show)
	api.Post("/stores/{slug}/orders", "orders.place", orderC.Place, middleware.RateLimit(30, time.Minute))
	api.Get("/orders/{code}", "orders.track", orderC.Track)

	// Seller: everything below requires a valid token.
	seller := api.Group("/seller", middleware.AuthRequired)
	seller.Get("/me", "auth.me", authC.Me)
	seller.Post("/store", "store.create", storeC.Create)
	seller.Get("/store", "store.show", storeC.Show)
	seller.Put("/store", "store.update", storeC.Update)
	seller.Get("/products", "products.index", productC.Index)
	seller.Post("/products", "products.create", productC.Create)
	seller.Put("/products/{id}", "products.update", productC.Update)
	seller.Post("/products/{id}/restock", "products.restock", productC.Restock)
	seller.Delete("/products/{id}", "products.delete", productC.Delete)
	seller.Post("/products/image", "products.upload", productC.UploadImage)
	seller.Get("/orders", "orders.index", orderC.Index)
	seller.Patch("/orders/{id}/status", "orders.status", orderC.UpdateStatus)
	seller.Get("/orders/feed", "orders.feed", orderC.Feed)
	seller.Get("/dashboard", "dashboard.stats", dashC.Stats)
}
