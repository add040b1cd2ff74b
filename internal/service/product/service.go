package product

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/metrics"
)

type productRepo interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySerial(ctx context.Context, serial string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Count(ctx context.Context, filter domain.ProductFilter) (int, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ProductUpdateParams) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}

type serialGenerator interface {
	Generate(manufacturer, name string) (string, bool)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages products and their serial codes.
type Service struct {
	products productRepo
	serials  serialGenerator
	audit    auditLogger
	tx       txManager
	metrics  *metrics.Metrics
	maxBatch int
	log      *slog.Logger
}

// NewService creates a new product service. m may be nil.
func NewService(
	log *slog.Logger,
	products productRepo,
	serials serialGenerator,
	audit auditLogger,
	tx txManager,
	m *metrics.Metrics,
	maxBatch int,
) *Service {
	return &Service{
		products: products,
		serials:  serials,
		audit:    audit,
		tx:       tx,
		metrics:  m,
		maxBatch: maxBatch,
		log:      log.With("service", "product"),
	}
}
