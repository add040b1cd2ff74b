package inspection

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	dl "github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/inspection-registry/internal/dataloader"
	"github.com/heartmarshall/inspection-registry/internal/domain"
)

// resolveBody returns the body with id or a NotFoundError.
func (s *Service) resolveBody(ctx context.Context, id uuid.UUID) (*domain.InspectionBody, error) {
	b, err := s.bodies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve body: %w", err)
	}
	return b, nil
}

// resolveProduct returns the product with id or a NotFoundError.
func (s *Service) resolveProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve product: %w", err)
	}
	return p, nil
}

// resolveFilter checks that the body and product a filter names exist.
func (s *Service) resolveFilter(ctx context.Context, f domain.InspectionFilter) error {
	if f.BodyID != nil {
		if _, err := s.resolveBody(ctx, *f.BodyID); err != nil {
			return err
		}
	}
	if f.ProductID != nil {
		if _, err := s.resolveProduct(ctx, *f.ProductID); err != nil {
			return err
		}
	}
	return nil
}

// loaders returns the request's loaders, or a fresh set for callers outside
// the HTTP middleware.
func (s *Service) loaders(ctx context.Context) *dataloader.Loaders {
	if l, ok := dataloader.Lookup(ctx); ok {
		return l
	}
	return dataloader.NewLoaders(&dataloader.Repos{Body: s.bodies, Product: s.products})
}

// hydrate attaches the referenced body and product to every inspection.
// All lookups are queued before any is awaited so each entity kind costs
// one batched query.
func (s *Service) hydrate(ctx context.Context, items []domain.Inspection) error {
	if len(items) == 0 {
		return nil
	}
	l := s.loaders(ctx)

	bodies := make(map[uuid.UUID]dl.Thunk[*domain.InspectionBody])
	products := make(map[uuid.UUID]dl.Thunk[*domain.Product])
	for _, it := range items {
		if _, ok := bodies[it.BodyID]; !ok {
			bodies[it.BodyID] = l.BodyByID.Load(ctx, it.BodyID)
		}
		if _, ok := products[it.ProductID]; !ok {
			products[it.ProductID] = l.ProductByID.Load(ctx, it.ProductID)
		}
	}

	for i := range items {
		b, err := bodies[items[i].BodyID]()
		if err != nil {
			return fmt.Errorf("load body: %w", err)
		}
		p, err := products[items[i].ProductID]()
		if err != nil {
			return fmt.Errorf("load product: %w", err)
		}
		items[i].Body = b
		items[i].Product = p
	}
	return nil
}

func (s *Service) hydrateOne(ctx context.Context, in *domain.Inspection) error {
	items := []domain.Inspection{*in}
	if err := s.hydrate(ctx, items); err != nil {
		return err
	}
	*in = items[0]
	return nil
}
