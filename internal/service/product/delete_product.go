package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/pkg/ctxutil"
)

// Delete removes a product. Fails with domain.ErrConflict while inspections reference it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.products.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     ctxutil.ActorFromCtx(txCtx),
			EntityType: domain.EntityTypeProduct,
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

	s.metrics.EntitiesDeletedAdd(domain.EntityTypeProduct, 1)
	s.log.InfoContext(ctx, "product deleted", slog.String("product_id", id.String()))

	return nil
}

// DeleteAll removes every product and returns how many were deleted.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	var n int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if n, err = s.products.DeleteAll(txCtx); err != nil {
			return fmt.Errorf("delete all products: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     ctxutil.ActorFromCtx(txCtx),
			EntityType: domain.EntityTypeProduct,
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

	s.metrics.EntitiesDeletedAdd(domain.EntityTypeProduct, n)
	s.log.InfoContext(ctx, "products deleted", slog.Int64("count", n))

	return n, nil
}
