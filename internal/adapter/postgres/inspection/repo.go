// Package inspection implements the Inspection repository using PostgreSQL.
package inspection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/inspection-registry/internal/adapter/postgres"
	"github.com/heartmarshall/inspection-registry/internal/domain"
)

const table = "inspections"

var columns = []string{
	"id", "inspection_date", "body_id", "product_id", "results", "safe",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID        uuid.UUID `db:"id"`
	Date      time.Time `db:"inspection_date"`
	BodyID    uuid.UUID `db:"body_id"`
	ProductID uuid.UUID `db:"product_id"`
	Results   *string   `db:"results"`
	Safe      bool      `db:"safe"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides inspection persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new inspection repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create inserts an inspection. References must exist; a dangling body_id or
// product_id surfaces as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, in *domain.Inspection) (*domain.Inspection, error) {
	id := in.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "inspection_date", "body_id", "product_id", "results", "safe").
		Values(id, dateArg(in.Date), in.BodyID, in.ProductID, in.Results, in.Safe).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert inspection: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeInspection, id)
	}

	return toDomain(out), nil
}

// Update overwrites the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.InspectionUpdateParams) (*domain.Inspection, error) {
	set := map[string]any{"updated_at": squirrel.Expr("now()")}
	if params.Date != nil {
		set["inspection_date"] = dateArg(*params.Date)
	}
	if params.BodyID != nil {
		set["body_id"] = *params.BodyID
	}
	if params.ProductID != nil {
		set["product_id"] = *params.ProductID
	}
	switch {
	case params.ClearResults:
		set["results"] = nil
	case params.Results != nil:
		set["results"] = *params.Results
	}
	if params.Safe != nil {
		set["safe"] = *params.Safe
	}

	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update inspection: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.NewNotFoundError(domain.EntityTypeInspection, id)
		}
		return nil, postgres.MapError(err, domain.EntityTypeInspection, id)
	}

	return toDomain(out), nil
}

// Delete removes an inspection. Returns a NotFoundError when no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM inspections WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypeInspection, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeInspection, id)
	}
	return nil
}

// DeleteAll removes every inspection and returns the number deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM inspections`)
	if err != nil {
		return 0, fmt.Errorf("delete all inspections: %w", err)
	}
	return tag.RowsAffected(), nil
}

// GetByID returns an inspection by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select inspection: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.NewNotFoundError(domain.EntityTypeInspection, id)
		}
		return nil, postgres.MapError(err, domain.EntityTypeInspection, id)
	}

	return toDomain(out), nil
}

// List returns inspections matching filter in the order filter.Sort selects.
func (r *Repo) List(ctx context.Context, filter domain.InspectionFilter) ([]domain.Inspection, error) {
	qb := applyFilter(postgres.Builder().Select(columns...).From(table), filter)
	switch filter.Sort {
	case domain.InspectionSortNewest:
		qb = qb.OrderBy("inspection_date DESC", "id ASC")
	default:
		qb = qb.OrderBy("created_at ASC", "id ASC")
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list inspections: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}

	out := make([]domain.Inspection, len(rows))
	for i, rw := range rows {
		out[i] = *toDomain(rw)
	}
	return out, nil
}

// Count returns the number of inspections matching filter.
func (r *Repo) Count(ctx context.Context, filter domain.InspectionFilter) (int, error) {
	sql, args, err := applyFilter(postgres.Builder().Select("COUNT(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count inspections: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count inspections: %w", err)
	}
	return n, nil
}

// Stats returns total, safe and unsafe counts for inspections matching filter.
func (r *Repo) Stats(ctx context.Context, filter domain.InspectionFilter) (domain.InspectionStats, error) {
	sql, args, err := applyFilter(
		postgres.Builder().
			Select("COUNT(*)", "COUNT(*) FILTER (WHERE safe)", "COUNT(*) FILTER (WHERE NOT safe)").
			From(table),
		filter,
	).ToSql()
	if err != nil {
		return domain.InspectionStats{}, fmt.Errorf("build inspection stats: %w", err)
	}

	var s domain.InspectionStats
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&s.Total, &s.Safe, &s.Unsafe); err != nil {
		return domain.InspectionStats{}, fmt.Errorf("inspection stats: %w", err)
	}
	return s, nil
}

func applyFilter(qb squirrel.SelectBuilder, f domain.InspectionFilter) squirrel.SelectBuilder {
	if f.Date != nil {
		qb = qb.Where(squirrel.Eq{"inspection_date": dateArg(*f.Date)})
	}
	if f.From != nil {
		qb = qb.Where(squirrel.GtOrEq{"inspection_date": dateArg(*f.From)})
	}
	if f.To != nil {
		qb = qb.Where(squirrel.LtOrEq{"inspection_date": dateArg(*f.To)})
	}
	if f.BodyID != nil {
		qb = qb.Where(squirrel.Eq{"body_id": *f.BodyID})
	}
	if f.ProductID != nil {
		qb = qb.Where(squirrel.Eq{"product_id": *f.ProductID})
	}
	if f.Safe != nil {
		qb = qb.Where(squirrel.Eq{"safe": *f.Safe})
	}
	return qb
}

func dateArg(t time.Time) pgtype.Date {
	return pgtype.Date{Time: domain.CalendarDate(t), Valid: true}
}

func toDomain(r row) *domain.Inspection {
	return &domain.Inspection{
		ID:        r.ID,
		Date:      domain.CalendarDate(r.Date),
		BodyID:    r.BodyID,
		ProductID: r.ProductID,
		Results:   r.Results,
		Safe:      r.Safe,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
