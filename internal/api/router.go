// internal/api/router.go
package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"exercise-tracker/internal/api/handler"
	apimiddleware "exercise-tracker/internal/api/middleware"
)

// Pinger reports whether the store is reachable. *sqlx.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterConfig holds the router's non-handler settings.
type RouterConfig struct {
	AllowedOrigins []string
	PublicDir      string // Static assets served for otherwise unmatched paths
	ViewsDir       string // Holds index.html, served at /
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	userHandler *handler.UserHandler,
	exerciseHandler *handler.ExerciseHandler,
	store Pinger,
	cfg RouterConfig,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apimiddleware.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.PingContext(ctx); err != nil {
			logger.Error("Health check failed", "error", err)
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)
		r.Post("/{_id}/exercises", exerciseHandler.LogExercise)
		r.Get("/{_id}/logs", exerciseHandler.GetLog)
	})

	// Front page and static assets
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		index := filepath.Join(cfg.ViewsDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, index)
	})
	if cfg.PublicDir != "" {
		r.NotFound(staticHandler(cfg.PublicDir))
	}

	return r
}
