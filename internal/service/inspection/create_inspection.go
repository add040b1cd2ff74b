package inspection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/pkg/ctxutil"
)

// Create records an inspection. The body and product must exist; the stored
// inspection is returned with both attached.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Inspection, error) {
	if err := input.Validate(s.Today()); err != nil {
		return nil, err
	}

	var created *domain.Inspection
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		body, err := s.resolveBody(txCtx, input.BodyID)
		if err != nil {
			return err
		}
		product, err := s.resolveProduct(txCtx, input.ProductID)
		if err != nil {
			return err
		}

		created, err = s.create(txCtx, input.inspection())
		if err != nil {
			return err
		}
		created.Body = body
		created.Product = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EntitiesCreatedAdd(domain.EntityTypeInspection, 1)
	s.log.InfoContext(ctx, "inspection created",
		slog.String("inspection_id", created.ID.String()),
		slog.String("body_id", created.BodyID.String()),
		slog.String("product_id", created.ProductID.String()),
		slog.Bool("safe", created.Safe),
	)

	return created, nil
}

// CreateMany records several inspections atomically. Every item is
// validated and every reference resolved before anything is written.
func (s *Service) CreateMany(ctx context.Context, inputs []CreateInput) ([]domain.Inspection, error) {
	if len(inputs) == 0 {
		return []domain.Inspection{}, nil
	}
	if s.maxBatch > 0 && len(inputs) > s.maxBatch {
		return nil, domain.NewValidationError("items", fmt.Sprintf("max %d items per batch", s.maxBatch))
	}

	today := s.Today()
	var errs []domain.FieldError
	for i, in := range inputs {
		errs = append(errs, in.fieldErrors(fmt.Sprintf("items[%d].", i), today)...)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	created := make([]domain.Inspection, 0, len(inputs))
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		bodies, products, err := s.resolveAll(txCtx, inputs)
		if err != nil {
			return err
		}

		for _, in := range inputs {
			c, err := s.create(txCtx, in.inspection())
			if err != nil {
				return err
			}
			c.Body = bodies[c.BodyID]
			c.Product = products[c.ProductID]
			created = append(created, *c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EntitiesCreatedAdd(domain.EntityTypeInspection, len(created))
	s.log.InfoContext(ctx, "inspections created", slog.Int("count", len(created)))

	return created, nil
}

// resolveAll fetches every distinct body and product the inputs reference
// with one query per kind. The first missing reference is reported.
func (s *Service) resolveAll(ctx context.Context, inputs []CreateInput) (
	map[uuid.UUID]*domain.InspectionBody, map[uuid.UUID]*domain.Product, error,
) {
	var bodyIDs, productIDs []uuid.UUID
	seenBody := make(map[uuid.UUID]bool)
	seenProduct := make(map[uuid.UUID]bool)
	for _, in := range inputs {
		if !seenBody[in.BodyID] {
			seenBody[in.BodyID] = true
			bodyIDs = append(bodyIDs, in.BodyID)
		}
		if !seenProduct[in.ProductID] {
			seenProduct[in.ProductID] = true
			productIDs = append(productIDs, in.ProductID)
		}
	}

	bodyList, err := s.bodies.GetByIDs(ctx, bodyIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve bodies: %w", err)
	}
	bodies := make(map[uuid.UUID]*domain.InspectionBody, len(bodyList))
	for i := range bodyList {
		bodies[bodyList[i].ID] = &bodyList[i]
	}

	productList, err := s.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve products: %w", err)
	}
	products := make(map[uuid.UUID]*domain.Product, len(productList))
	for i := range productList {
		products[productList[i].ID] = &productList[i]
	}

	for _, in := range inputs {
		if _, ok := bodies[in.BodyID]; !ok {
			return nil, nil, fmt.Errorf("resolve body: %w", domain.NewNotFoundError(domain.EntityTypeInspectionBody, in.BodyID))
		}
		if _, ok := products[in.ProductID]; !ok {
			return nil, nil, fmt.Errorf("resolve product: %w", domain.NewNotFoundError(domain.EntityTypeProduct, in.ProductID))
		}
	}
	return bodies, products, nil
}

// create persists in and writes its audit record. Must run inside a transaction.
func (s *Service) create(txCtx context.Context, in *domain.Inspection) (*domain.Inspection, error) {
	created, err := s.inspections.Create(txCtx, in)
	if err != nil {
		return nil, fmt.Errorf("create inspection: %w", err)
	}

	if err := s.audit.Log(txCtx, domain.AuditRecord{
		UserID:     ctxutil.ActorFromCtx(txCtx),
		EntityType: domain.EntityTypeInspection,
		EntityID:   &created.ID,
		Action:     domain.AuditActionCreate,
		Changes: map[string]any{
			"date":       map[string]any{"new": domain.FormatDate(created.Date)},
			"body_id":    map[string]any{"new": created.BodyID},
			"product_id": map[string]any{"new": created.ProductID},
			"safe":       map[string]any{"new": created.Safe},
		},
	}); err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}

	return created, nil
}
