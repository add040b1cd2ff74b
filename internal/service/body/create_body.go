package body

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/pkg/ctxutil"
)

// Create registers a new inspection body. The name must not be taken.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.InspectionBody, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	body := input.normalized()

	var created *domain.InspectionBody
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		taken, err := s.bodies.ExistsByName(txCtx, body.Name, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check body name: %w", err)
		}
		if taken {
			return &domain.DuplicateNameError{Name: body.Name}
		}

		created, err = s.create(txCtx, body)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EntitiesCreatedAdd(domain.EntityTypeInspectionBody, 1)
	s.log.InfoContext(ctx, "inspection body created",
		slog.String("body_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.String("jurisdiction", created.Jurisdiction.String()),
	)

	return created, nil
}

// CreateMany registers several bodies atomically. Every item is validated and
// every name checked, both against the store and within the batch, before
// anything is written.
func (s *Service) CreateMany(ctx context.Context, inputs []CreateInput) ([]domain.InspectionBody, error) {
	if len(inputs) == 0 {
		return []domain.InspectionBody{}, nil
	}
	if s.maxBatch > 0 && len(inputs) > s.maxBatch {
		return nil, domain.NewValidationError("items", fmt.Sprintf("max %d items per batch", s.maxBatch))
	}

	var errs []domain.FieldError
	for i, in := range inputs {
		errs = append(errs, in.fieldErrors(fmt.Sprintf("items[%d].", i))...)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	bodies := make([]*domain.InspectionBody, len(inputs))
	names := make([]string, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	for i, in := range inputs {
		bodies[i] = in.normalized()
		names[i] = bodies[i].Name
		if _, dup := seen[names[i]]; dup {
			return nil, &domain.DuplicateNameError{Name: names[i]}
		}
		seen[names[i]] = struct{}{}
	}

	created := make([]domain.InspectionBody, 0, len(bodies))
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		taken, err := s.bodies.ExistingNames(txCtx, names)
		if err != nil {
			return fmt.Errorf("check body names: %w", err)
		}
		if len(taken) > 0 {
			return &domain.DuplicateNameError{Name: taken[0]}
		}

		for _, b := range bodies {
			c, err := s.create(txCtx, b)
			if err != nil {
				return err
			}
			created = append(created, *c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EntitiesCreatedAdd(domain.EntityTypeInspectionBody, len(created))
	s.log.InfoContext(ctx, "inspection bodies created", slog.Int("count", len(created)))

	return created, nil
}

// create persists b and writes its audit record. Must run inside a transaction.
func (s *Service) create(txCtx context.Context, b *domain.InspectionBody) (*domain.InspectionBody, error) {
	created, err := s.bodies.Create(txCtx, b)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, &domain.DuplicateNameError{Name: b.Name}
		}
		return nil, fmt.Errorf("create body: %w", err)
	}

	if err := s.audit.Log(txCtx, domain.AuditRecord{
		UserID:     ctxutil.ActorFromCtx(txCtx),
		EntityType: domain.EntityTypeInspectionBody,
		EntityID:   &created.ID,
		Action:     domain.AuditActionCreate,
		Changes: map[string]any{
			"name":         map[string]any{"new": created.Name},
			"jurisdiction": map[string]any{"new": created.Jurisdiction},
			"competence":   map[string]any{"new": created.Competence},
		},
	}); err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}

	return created, nil
}
