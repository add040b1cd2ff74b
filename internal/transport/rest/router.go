package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/inspection-registry/internal/transport/middleware"
)

// RouterConfig carries the handlers and cross-cutting middleware of the API.
type RouterConfig struct {
	Log         *slog.Logger
	Health      *HealthHandler
	Auth        *AuthHandler
	Bodies      *BodyHandler
	Products    *ProductHandler
	Inspections *InspectionHandler
	Users       *UserHandler

	// Metrics serves /metrics when non-nil.
	Metrics http.Handler

	// Global wraps every route, outermost first.
	Global []middleware.Middleware
	// API wraps the registry routes only (auth, dataloaders).
	API []middleware.Middleware
}

// NewRouter builds the chi router of the registry API.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(cfg.Global...))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	if cfg.Health != nil {
		r.Get("/health", cfg.Health.Health)
		r.Get("/live", cfg.Health.Live)
		r.Get("/ready", cfg.Health.Ready)
	}
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}
	if cfg.Auth != nil {
		cfg.Auth.Register(r)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Chain(cfg.API...))
		if cfg.Bodies != nil {
			cfg.Bodies.Register(r)
		}
		if cfg.Products != nil {
			cfg.Products.Register(r)
		}
		if cfg.Inspections != nil {
			cfg.Inspections.Register(r)
		}
		if cfg.Users != nil {
			cfg.Users.Register(r)
		}
	})

	return r
}
