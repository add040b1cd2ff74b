// Package dataloader provides per-request DataLoaders that batch the
// inspection body and product lookups needed to hydrate inspections into
// single SQL calls.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type bodyRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.InspectionBody, error)
}

type productRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Body    bodyRepo
	Product productRepo
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	BodyByID    *dataloader.Loader[uuid.UUID, *domain.InspectionBody]
	ProductByID *dataloader.Loader[uuid.UUID, *domain.Product]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Loaders cache results, so a set must not outlive a single request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		BodyByID:    newLoader(newBodyBatchFn(repos.Body)),
		ProductByID: newLoader(newProductBatchFn(repos.Product)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// Lookup returns the Loaders stored in ctx, if any. Callers build
// a fresh set when the middleware is not installed.
func Lookup(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}
