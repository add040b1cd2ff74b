package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/pkg/ctxutil"
)

// Update overwrites the provided fields of a product. The serial code is
// reissued only when the name or manufacturer actually changes.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := input.params()

	var updated *domain.Product
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.products.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}

		name, manufacturer := old.Name, old.Manufacturer
		if params.Name != nil {
			name = *params.Name
		}
		if params.Manufacturer != nil {
			manufacturer = *params.Manufacturer
		}
		if name != old.Name || manufacturer != old.Manufacturer {
			if code, ok := s.serials.Generate(manufacturer, name); ok {
				params.SerialCode = &code
			} else {
				params.ClearSerialCode = true
			}
		}

		updated, err = s.products.Update(txCtx, input.ID, params)
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}

		if changes := buildChanges(old, updated); len(changes) > 0 {
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     ctxutil.ActorFromCtx(txCtx),
				EntityType: domain.EntityTypeProduct,
				EntityID:   &input.ID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "product updated",
		slog.String("product_id", input.ID.String()),
		slog.String("serial_code", deref(updated.SerialCode)),
	)

	return updated, nil
}

// buildChanges returns only changed fields for audit.
func buildChanges(old, updated *domain.Product) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, a, b any) {
		if a != b {
			changes[field] = map[string]any{"old": a, "new": b}
		}
	}
	diff("name", old.Name, updated.Name)
	diff("manufacturer", old.Manufacturer, updated.Manufacturer)
	diff("country", old.Country, updated.Country)
	diff("description", deref(old.Description), deref(updated.Description))
	diff("serial_code", deref(old.SerialCode), deref(updated.SerialCode))
	return changes
}
