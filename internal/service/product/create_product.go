package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/pkg/ctxutil"
)

// Create registers a product and issues its serial code.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Product
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.create(txCtx, input.normalized())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EntitiesCreatedAdd(domain.EntityTypeProduct, 1)
	s.log.InfoContext(ctx, "product created",
		slog.String("product_id", created.ID.String()),
		slog.String("manufacturer", created.Manufacturer),
		slog.String("serial_code", deref(created.SerialCode)),
	)

	return created, nil
}

// CreateMany registers several products atomically. All items are validated
// before anything is written.
func (s *Service) CreateMany(ctx context.Context, inputs []CreateInput) ([]domain.Product, error) {
	if len(inputs) == 0 {
		return []domain.Product{}, nil
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

	created := make([]domain.Product, 0, len(inputs))
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, in := range inputs {
			p, err := s.create(txCtx, in.normalized())
			if err != nil {
				return err
			}
			created = append(created, *p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EntitiesCreatedAdd(domain.EntityTypeProduct, len(created))
	s.log.InfoContext(ctx, "products created", slog.Int("count", len(created)))

	return created, nil
}

// create assigns a serial code, persists p and writes its audit record.
// Must run inside a transaction.
func (s *Service) create(txCtx context.Context, p *domain.Product) (*domain.Product, error) {
	if code, ok := s.serials.Generate(p.Manufacturer, p.Name); ok {
		p.SerialCode = &code
	}

	created, err := s.products.Create(txCtx, p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.audit.Log(txCtx, domain.AuditRecord{
		UserID:     ctxutil.ActorFromCtx(txCtx),
		EntityType: domain.EntityTypeProduct,
		EntityID:   &created.ID,
		Action:     domain.AuditActionCreate,
		Changes: map[string]any{
			"name":         map[string]any{"new": created.Name},
			"manufacturer": map[string]any{"new": created.Manufacturer},
			"serial_code":  map[string]any{"new": deref(created.SerialCode)},
		},
	}); err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}

	return created, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
