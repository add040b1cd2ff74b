package body

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/metrics"
)

type bodyRepo interface {
	Create(ctx context.Context, b *domain.InspectionBody) (*domain.InspectionBody, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InspectionBody, error)
	GetByName(ctx context.Context, name string) (*domain.InspectionBody, error)
	List(ctx context.Context, filter domain.BodyFilter) ([]domain.InspectionBody, error)
	Count(ctx context.Context, filter domain.BodyFilter) (int, error)
	ExistsByName(ctx context.Context, name string, exclude uuid.UUID) (bool, error)
	ExistingNames(ctx context.Context, names []string) ([]string, error)
	Update(ctx context.Context, id uuid.UUID, params domain.InspectionBodyUpdateParams) (*domain.InspectionBody, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages inspection bodies.
type Service struct {
	bodies   bodyRepo
	audit    auditLogger
	tx       txManager
	metrics  *metrics.Metrics
	maxBatch int
	log      *slog.Logger
}

// NewService creates a new inspection body service.
// maxBatch caps the size of CreateMany; m may be nil.
func NewService(
	log *slog.Logger,
	bodies bodyRepo,
	audit auditLogger,
	tx txManager,
	m *metrics.Metrics,
	maxBatch int,
) *Service {
	return &Service{
		bodies:   bodies,
		audit:    audit,
		tx:       tx,
		metrics:  m,
		maxBatch: maxBatch,
		log:      log.With("service", "body"),
	}
}
