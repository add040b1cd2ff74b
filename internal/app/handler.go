package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/inspection-registry/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/inspection-registry/internal/adapter/postgres/audit"
	bodyrepo "github.com/heartmarshall/inspection-registry/internal/adapter/postgres/body"
	inspectionrepo "github.com/heartmarshall/inspection-registry/internal/adapter/postgres/inspection"
	productrepo "github.com/heartmarshall/inspection-registry/internal/adapter/postgres/product"
	userrepo "github.com/heartmarshall/inspection-registry/internal/adapter/postgres/user"
	"github.com/heartmarshall/inspection-registry/internal/archive"
	jwtauth "github.com/heartmarshall/inspection-registry/internal/auth"
	"github.com/heartmarshall/inspection-registry/internal/config"
	"github.com/heartmarshall/inspection-registry/internal/dataloader"
	"github.com/heartmarshall/inspection-registry/internal/metrics"
	"github.com/heartmarshall/inspection-registry/internal/serial"
	authsvc "github.com/heartmarshall/inspection-registry/internal/service/auth"
	bodysvc "github.com/heartmarshall/inspection-registry/internal/service/body"
	inspectionsvc "github.com/heartmarshall/inspection-registry/internal/service/inspection"
	productsvc "github.com/heartmarshall/inspection-registry/internal/service/product"
	reportsvc "github.com/heartmarshall/inspection-registry/internal/service/report"
	usersvc "github.com/heartmarshall/inspection-registry/internal/service/user"
	"github.com/heartmarshall/inspection-registry/internal/transport/middleware"
	"github.com/heartmarshall/inspection-registry/internal/transport/rest"
)

// Deps are the external resources the HTTP handler is built on.
// Archive and Tracer may be nil. A nil Registry gets a fresh one.
type Deps struct {
	Pool     *pgxpool.Pool
	Archive  archive.Store
	Tracer   trace.Tracer
	Registry *prometheus.Registry
}

// NewHandler wires repositories, services and middleware into the
// registry's HTTP handler.
func NewHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger, deps Deps) (http.Handler, error) {
	loc, err := cfg.Registry.Location()
	if err != nil {
		return nil, fmt.Errorf("registry timezone: %w", err)
	}

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)

	// Repositories.
	pool := deps.Pool
	txm := postgres.NewTxManager(pool)
	bodies := bodyrepo.New(pool)
	products := productrepo.New(pool)
	inspections := inspectionrepo.New(pool)
	audits := auditrepo.New(pool)
	users := userrepo.New(pool)

	// Serial codes continue after the highest sequence already issued.
	latest, err := products.LatestSerialCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed serial counter: %w", err)
	}
	next := serial.NextAfter(latest)
	serials := serial.NewGenerator(serial.NewAtomicCounter(next), serial.WithIssueHook(m.SerialIssued))
	logger.Info("serial counter seeded", slog.Int64("next", next))

	// Services.
	batch := cfg.Registry.MaxBatchSize
	bodyService := bodysvc.NewService(logger, bodies, audits, txm, m, batch)
	productService := productsvc.NewService(logger, products, serials, audits, txm, m, batch)
	inspectionService := inspectionsvc.NewService(logger, inspections, bodies, products, audits, txm, m, loc, batch)
	reportService := reportsvc.NewService(logger, inspectionService, deps.Archive, m)
	authService := authsvc.NewService(logger, users,
		jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL), cfg.Auth)
	userService := usersvc.NewService(logger, users, audits)

	checks := []rest.HealthCheck{rest.DatabaseCheck(pool)}
	if reportService.ArchiveEnabled() {
		logger.Info("report archive enabled", slog.String("driver", deps.Archive.Driver()))
		checks = append(checks, rest.ArchiveCheck(deps.Archive))
	}

	return rest.NewRouter(rest.RouterConfig{
		Log:         logger,
		Health:      rest.NewHealthHandler(Version, checks...),
		Auth:        rest.NewAuthHandler(authService, logger),
		Bodies:      rest.NewBodyHandler(bodyService, logger),
		Products:    rest.NewProductHandler(productService, logger),
		Inspections: rest.NewInspectionHandler(inspectionService, reportService, logger),
		Users:       rest.NewUserHandler(userService, logger),
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Tracing(deps.Tracer),
			middleware.Metrics(m),
		},
		API: []middleware.Middleware{
			middleware.Auth(authService, cfg.Auth.Required),
			middleware.Logger(logger),
			dataloader.Middleware(&dataloader.Repos{Body: bodies, Product: products}),
		},
	}), nil
}
