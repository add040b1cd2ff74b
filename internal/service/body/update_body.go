package body

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/pkg/ctxutil"
)

// Update overwrites the provided fields of a body. A rename is checked for
// uniqueness against every other body.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.InspectionBody, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := input.params()

	var updated *domain.InspectionBody
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.bodies.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get body: %w", err)
		}

		if params.Name != nil && *params.Name != old.Name {
			taken, err := s.bodies.ExistsByName(txCtx, *params.Name, input.ID)
			if err != nil {
				return fmt.Errorf("check body name: %w", err)
			}
			if taken {
				return &domain.DuplicateNameError{Name: *params.Name}
			}
		}

		updated, err = s.bodies.Update(txCtx, input.ID, params)
		if err != nil {
			return fmt.Errorf("update body: %w", err)
		}

		// Skip audit if nothing actually changed.
		if changes := buildChanges(old, updated); len(changes) > 0 {
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     ctxutil.ActorFromCtx(txCtx),
				EntityType: domain.EntityTypeInspectionBody,
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

	s.log.InfoContext(ctx, "inspection body updated", slog.String("body_id", input.ID.String()))

	return updated, nil
}

// buildChanges returns only changed fields for audit.
func buildChanges(old, updated *domain.InspectionBody) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, a, b any) {
		if a != b {
			changes[field] = map[string]any{"old": a, "new": b}
		}
	}
	diff("name", old.Name, updated.Name)
	diff("jurisdiction", old.Jurisdiction, updated.Jurisdiction)
	diff("competence", old.Competence, updated.Competence)
	diff("contact.first_name", old.Contact.FirstName, updated.Contact.FirstName)
	diff("contact.last_name", old.Contact.LastName, updated.Contact.LastName)
	diff("contact.phone", old.Contact.Phone, updated.Contact.Phone)
	diff("contact.email", old.Contact.Email, updated.Contact.Email)
	return changes
}
