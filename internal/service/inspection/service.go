package inspection

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/metrics"
)

type inspectionRepo interface {
	Create(ctx context.Context, in *domain.Inspection) (*domain.Inspection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error)
	List(ctx context.Context, filter domain.InspectionFilter) ([]domain.Inspection, error)
	Count(ctx context.Context, filter domain.InspectionFilter) (int, error)
	Stats(ctx context.Context, filter domain.InspectionFilter) (domain.InspectionStats, error)
	Update(ctx context.Context, id uuid.UUID, params domain.InspectionUpdateParams) (*domain.Inspection, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}

type bodyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InspectionBody, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.InspectionBody, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service records inspections and answers queries over them. Every write
// resolves the referenced body and product first.
type Service struct {
	inspections inspectionRepo
	bodies      bodyRepo
	products    productRepo
	audit       auditLogger
	tx          txManager
	metrics     *metrics.Metrics
	loc         *time.Location
	now         func() time.Time
	maxBatch    int
	log         *slog.Logger
}

// NewService creates a new inspection service. loc decides which calendar
// day "today" is; m may be nil.
func NewService(
	log *slog.Logger,
	inspections inspectionRepo,
	bodies bodyRepo,
	products productRepo,
	audit auditLogger,
	tx txManager,
	m *metrics.Metrics,
	loc *time.Location,
	maxBatch int,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		inspections: inspections,
		bodies:      bodies,
		products:    products,
		audit:       audit,
		tx:          tx,
		metrics:     m,
		loc:         loc,
		now:         time.Now,
		maxBatch:    maxBatch,
		log:         log.With("service", "inspection"),
	}
}

// Today returns the current calendar date in the registry time zone.
func (s *Service) Today() time.Time {
	return domain.CalendarDate(s.now().In(s.loc))
}
