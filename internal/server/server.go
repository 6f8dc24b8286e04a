// Package server boots the HTTP server: config, database, cache, storage,
// middleware stack, routes, graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warungku/warung/app/routes"
	"github.com/warungku/warung/config"
	"github.com/warungku/warung/pkg/cache"
	"github.com/warungku/warung/pkg/database"
	"github.com/warungku/warung/pkg/logger"
	"github.com/warungku/warung/pkg/metrics"
	"github.com/warungku/warung/pkg/middleware"
	"github.com/warungku/warung/pkg/reqid"
	"github.com/warungku/warung/pkg/router"
	"github.com/warungku/warung/pkg/storage"
)

// Boot prepares every subsystem the server (and most CLI commands) need.
// Redis being down is logged, not fatal: the app reads through to the
// database without it.
func Boot() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: connect database: %w", err)
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, caching disabled", "error", err)
	}

	storage.Connect()
	return nil
}

// NewRouter builds the fully wired HTTP router.
func NewRouter() *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)

	routes.Register(r)
	return r
}

// Run boots the app and serves HTTP until SIGINT/SIGTERM, then drains
// in-flight requests for up to 10 seconds.
func Run() error {
	if err := Boot(); err != nil {
		return err
	}

	r := NewRouter()
	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
