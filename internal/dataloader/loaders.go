package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

func newBodyBatchFn(repo bodyRepo) dataloader.BatchFunc[uuid.UUID, *domain.InspectionBody] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.InspectionBody] {
		bodies, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.InspectionBody](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.InspectionBody, len(bodies))
		for i := range bodies {
			byID[bodies[i].ID] = &bodies[i]
		}

		return mapResults(keys, byID, domain.EntityTypeInspectionBody)
	}
}

func newProductBatchFn(repo productRepo) dataloader.BatchFunc[uuid.UUID, *domain.Product] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Product] {
		products, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Product](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Product, len(products))
		for i := range products {
			byID[products[i].ID] = &products[i]
		}

		return mapResults(keys, byID, domain.EntityTypeProduct)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order. Missing keys yield a NotFoundError.
func mapResults[V any](keys []uuid.UUID, found map[uuid.UUID]V, entity domain.EntityType) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := found[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Error: domain.NewNotFoundError(entity, key)}
		}
	}
	return results
}
