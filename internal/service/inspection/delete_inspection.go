package inspection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/pkg/ctxutil"
)

// Delete removes an inspection.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.inspections.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete inspection: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     ctxutil.ActorFromCtx(txCtx),
			EntityType: domain.EntityTypeInspection,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.EntitiesDeletedAdd(domain.EntityTypeInspection, 1)
	s.log.InfoContext(ctx, "inspection deleted", slog.String("inspection_id", id.String()))

	return nil
}

// DeleteAll removes every inspection and returns how many were deleted.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	var n int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if n, err = s.inspections.DeleteAll(txCtx); err != nil {
			return fmt.Errorf("delete all inspections: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     ctxutil.ActorFromCtx(txCtx),
			EntityType: domain.EntityTypeInspection,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"deleted": n},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.metrics.EntitiesDeletedAdd(domain.EntityTypeInspection, n)
	s.log.InfoContext(ctx, "inspections deleted", slog.Int64("count", n))

	return n, nil
}
