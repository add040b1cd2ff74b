package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/inspection-registry/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// auditReader exposes the read side of the audit log.
type auditReader interface {
	GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error)
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// Service implements read operations for the authenticated account and
// the change history of registry entities.
type Service struct {
	log   *slog.Logger
	users userRepo
	audit auditReader
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, audit auditReader) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		audit: audit,
	}
}
