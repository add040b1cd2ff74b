package inspection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/pkg/ctxutil"
)

// Update overwrites the provided fields of an inspection. A provided body or
// product id is always resolved, even when it equals the stored one.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Inspection, error) {
	if err := input.Validate(s.Today()); err != nil {
		return nil, err
	}

	params := input.params()

	var updated *domain.Inspection
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.inspections.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get inspection: %w", err)
		}

		var body *domain.InspectionBody
		if params.BodyID != nil {
			if body, err = s.resolveBody(txCtx, *params.BodyID); err != nil {
				return err
			}
		}
		var product *domain.Product
		if params.ProductID != nil {
			if product, err = s.resolveProduct(txCtx, *params.ProductID); err != nil {
				return err
			}
		}

		updated, err = s.inspections.Update(txCtx, input.ID, params)
		if err != nil {
			return fmt.Errorf("update inspection: %w", err)
		}
		updated.Body = body
		updated.Product = product

		if changes := buildChanges(old, updated); len(changes) > 0 {
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     ctxutil.ActorFromCtx(txCtx),
				EntityType: domain.EntityTypeInspection,
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

	if updated.Body == nil || updated.Product == nil {
		if err := s.hydrateOne(ctx, updated); err != nil {
			return nil, err
		}
	}

	s.log.InfoContext(ctx, "inspection updated", slog.String("inspection_id", input.ID.String()))

	return updated, nil
}

// buildChanges returns only changed fields for audit.
func buildChanges(old, updated *domain.Inspection) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, a, b any) {
		if a != b {
			changes[field] = map[string]any{"old": a, "new": b}
		}
	}
	diff("date", domain.FormatDate(old.Date), domain.FormatDate(updated.Date))
	diff("body_id", old.BodyID, updated.BodyID)
	diff("product_id", old.ProductID, updated.ProductID)
	diff("results", deref(old.Results), deref(updated.Results))
	diff("safe", old.Safe, updated.Safe)
	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
