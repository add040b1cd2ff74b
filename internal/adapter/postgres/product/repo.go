// Package product implements the Product repository using PostgreSQL.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/inspection-registry/internal/adapter/postgres"
	"github.com/heartmarshall/inspection-registry/internal/domain"
)

const table = "products"

var columns = []string{
	"id", "name", "manufacturer", "country", "description", "serial_code",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Manufacturer string    `db:"manufacturer"`
	Country      string    `db:"country"`
	Description  *string   `db:"description"`
	SerialCode   *string   `db:"serial_code"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new product repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create inserts a product. A zero ID is replaced with a fresh UUID.
func (r *Repo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "name", "manufacturer", "country", "description", "serial_code").
		Values(id, p.Name, p.Manufacturer, string(p.Country), p.Description, p.SerialCode).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert product: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeProduct, id)
	}

	return toDomain(out), nil
}

// Update overwrites the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ProductUpdateParams) (*domain.Product, error) {
	set := map[string]any{"updated_at": squirrel.Expr("now()")}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Manufacturer != nil {
		set["manufacturer"] = *params.Manufacturer
	}
	if params.Country != nil {
		set["country"] = string(*params.Country)
	}
	switch {
	case params.ClearDescription:
		set["description"] = nil
	case params.Description != nil:
		set["description"] = *params.Description
	}
	switch {
	case params.ClearSerialCode:
		set["serial_code"] = nil
	case params.SerialCode != nil:
		set["serial_code"] = *params.SerialCode
	}

	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update product: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.NewNotFoundError(domain.EntityTypeProduct, id)
		}
		return nil, postgres.MapError(err, domain.EntityTypeProduct, id)
	}

	return toDomain(out), nil
}

// Delete removes a product. Returns a NotFoundError when no row matched and
// domain.ErrConflict while inspections still reference it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeProduct, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeProduct, id)
	}
	return nil
}

// DeleteAll removes every product and returns the number deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, postgres.MapDeleteError(err, domain.EntityTypeProduct, uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// GetByID returns a product by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetBySerial returns a product by its serial code.
func (r *Repo) GetBySerial(ctx context.Context, serial string) (*domain.Product, error) {
	return r.getOne(ctx, squirrel.Eq{"serial_code": serial}, uuid.Nil)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id uuid.UUID) (*domain.Product, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select product: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.NewNotFoundError(domain.EntityTypeProduct, id)
		}
		return nil, postgres.MapError(err, domain.EntityTypeProduct, id)
	}

	return toDomain(out), nil
}

// GetByIDs returns the products for ids. Missing ids are omitted.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Expr("id = ANY(?)", ids)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select products by ids: %w", err)
	}

	return r.selectMany(ctx, sql, args)
}

// List returns products matching filter.
// Order: name ASC when SortByName, otherwise created_at ASC; id ASC breaks ties.
func (r *Repo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	qb := applyFilter(postgres.Builder().Select(columns...).From(table), filter)
	if filter.SortByName {
		qb = qb.OrderBy("name ASC", "id ASC")
	} else {
		qb = qb.OrderBy("created_at ASC", "id ASC")
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}

	return r.selectMany(ctx, sql, args)
}

// Count returns the number of products matching filter.
func (r *Repo) Count(ctx context.Context, filter domain.ProductFilter) (int, error) {
	sql, args, err := applyFilter(postgres.Builder().Select("COUNT(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count products: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// LatestSerialCode returns the stored serial code carrying the highest
// zero-padded counter suffix, or "" when no product has one.
func (r *Repo) LatestSerialCode(ctx context.Context) (string, error) {
	var code string
	err := r.q(ctx).QueryRow(ctx, `
		SELECT serial_code
		FROM products
		WHERE serial_code ~ '_[0-9]{10}$'
		ORDER BY RIGHT(serial_code, 10) DESC
		LIMIT 1`).Scan(&code)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("latest serial code: %w", err)
	}
	return code, nil
}

func applyFilter(qb squirrel.SelectBuilder, f domain.ProductFilter) squirrel.SelectBuilder {
	if f.Manufacturer != nil {
		qb = qb.Where(squirrel.Eq{"manufacturer": *f.Manufacturer})
	}
	if f.Country != nil {
		qb = qb.Where(squirrel.Eq{"country": string(*f.Country)})
	}
	if f.NameContains != nil {
		qb = qb.Where(squirrel.ILike{"name": postgres.ContainsPattern(*f.NameContains)})
	}
	if f.ManufacturerContains != nil {
		qb = qb.Where(squirrel.ILike{"manufacturer": postgres.ContainsPattern(*f.ManufacturerContains)})
	}
	return qb
}

func (r *Repo) selectMany(ctx context.Context, sql string, args []any) ([]domain.Product, error) {
	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}

	out := make([]domain.Product, len(rows))
	for i, rw := range rows {
		out[i] = *toDomain(rw)
	}
	return out, nil
}

func toDomain(r row) *domain.Product {
	return &domain.Product{
		ID:           r.ID,
		Name:         r.Name,
		Manufacturer: r.Manufacturer,
		Country:      domain.Country(r.Country),
		Description:  r.Description,
		SerialCode:   r.SerialCode,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
