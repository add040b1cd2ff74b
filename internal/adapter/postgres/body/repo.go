// Package body implements the InspectionBody repository using PostgreSQL.
package body

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/inspection-registry/internal/adapter/postgres"
	"github.com/heartmarshall/inspection-registry/internal/domain"
)

const table = "inspection_bodies"

var columns = []string{
	"id", "name", "jurisdiction", "competence",
	"contact_first_name", "contact_last_name", "contact_phone", "contact_email",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// row is the scan target for inspection_bodies.
type row struct {
	ID               uuid.UUID `db:"id"`
	Name             string    `db:"name"`
	Jurisdiction     string    `db:"jurisdiction"`
	Competence       string    `db:"competence"`
	ContactFirstName string    `db:"contact_first_name"`
	ContactLastName  string    `db:"contact_last_name"`
	ContactPhone     string    `db:"contact_phone"`
	ContactEmail     string    `db:"contact_email"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Repo provides inspection body persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new inspection body repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a body. A zero ID is replaced with a fresh UUID.
func (r *Repo) Create(ctx context.Context, b *domain.InspectionBody) (*domain.InspectionBody, error) {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "name", "jurisdiction", "competence",
			"contact_first_name", "contact_last_name", "contact_phone", "contact_email").
		Values(id, b.Name, string(b.Jurisdiction), string(b.Competence),
			b.Contact.FirstName, b.Contact.LastName, b.Contact.Phone, b.Contact.Email).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert body: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeInspectionBody, id)
	}

	return toDomain(out), nil
}

// Update overwrites the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.InspectionBodyUpdateParams) (*domain.InspectionBody, error) {
	set := map[string]any{"updated_at": squirrel.Expr("now()")}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Jurisdiction != nil {
		set["jurisdiction"] = string(*params.Jurisdiction)
	}
	if params.Competence != nil {
		set["competence"] = string(*params.Competence)
	}
	if params.FirstName != nil {
		set["contact_first_name"] = *params.FirstName
	}
	if params.LastName != nil {
		set["contact_last_name"] = *params.LastName
	}
	if params.Phone != nil {
		set["contact_phone"] = *params.Phone
	}
	if params.Email != nil {
		set["contact_email"] = *params.Email
	}

	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update body: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.NewNotFoundError(domain.EntityTypeInspectionBody, id)
		}
		return nil, postgres.MapError(err, domain.EntityTypeInspectionBody, id)
	}

	return toDomain(out), nil
}

// Delete removes a body. Returns a NotFoundError when no row matched and
// domain.ErrConflict while inspections still reference it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM inspection_bodies WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeInspectionBody, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityTypeInspectionBody, id)
	}
	return nil
}

// DeleteAll removes every body and returns the number deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM inspection_bodies`)
	if err != nil {
		return 0, postgres.MapDeleteError(err, domain.EntityTypeInspectionBody, uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a body by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InspectionBody, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByName returns a body by its exact name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.InspectionBody, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name}, uuid.Nil)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id uuid.UUID) (*domain.InspectionBody, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select body: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.NewNotFoundError(domain.EntityTypeInspectionBody, id)
		}
		return nil, postgres.MapError(err, domain.EntityTypeInspectionBody, id)
	}

	return toDomain(out), nil
}

// GetByIDs returns the bodies for ids (batch for DataLoader). Missing ids are omitted.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.InspectionBody, error) {
	if len(ids) == 0 {
		return []domain.InspectionBody{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Expr("id = ANY(?)", ids)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select bodies by ids: %w", err)
	}

	return r.selectMany(ctx, sql, args)
}

// List returns bodies matching filter.
// Order: name ASC when SortByName, otherwise created_at ASC; id ASC breaks ties.
func (r *Repo) List(ctx context.Context, filter domain.BodyFilter) ([]domain.InspectionBody, error) {
	qb := applyFilter(postgres.Builder().Select(columns...).From(table), filter)
	if filter.SortByName {
		qb = qb.OrderBy("name ASC", "id ASC")
	} else {
		qb = qb.OrderBy("created_at ASC", "id ASC")
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bodies: %w", err)
	}

	return r.selectMany(ctx, sql, args)
}

// Count returns the number of bodies matching filter.
func (r *Repo) Count(ctx context.Context, filter domain.BodyFilter) (int, error) {
	sql, args, err := applyFilter(postgres.Builder().Select("COUNT(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count bodies: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bodies: %w", err)
	}
	return n, nil
}

// ExistsByName reports whether a body other than exclude uses name.
func (r *Repo) ExistsByName(ctx context.Context, name string, exclude uuid.UUID) (bool, error) {
	sql, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.NotEq{"id": exclude}).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists body: %w", err)
	}

	var exists bool
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists body by name: %w", err)
	}
	return exists, nil
}

// ExistingNames returns the subset of names already taken.
func (r *Repo) ExistingNames(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{}, nil
	}

	var taken []string
	err := pgxscan.Select(ctx, r.q(ctx), &taken,
		`SELECT name FROM inspection_bodies WHERE name = ANY($1) ORDER BY name`, names)
	if err != nil {
		return nil, fmt.Errorf("existing body names: %w", err)
	}
	if taken == nil {
		taken = []string{}
	}
	return taken, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func applyFilter(qb squirrel.SelectBuilder, f domain.BodyFilter) squirrel.SelectBuilder {
	if f.Jurisdiction != nil {
		qb = qb.Where(squirrel.Eq{"jurisdiction": string(*f.Jurisdiction)})
	}
	if f.Competence != nil {
		qb = qb.Where(squirrel.Eq{"competence": string(*f.Competence)})
	}
	if f.NameContains != nil {
		qb = qb.Where(squirrel.ILike{"name": postgres.ContainsPattern(*f.NameContains)})
	}
	if f.Email != nil {
		qb = qb.Where(squirrel.Eq{"contact_email": *f.Email})
	}
	if f.Phone != nil {
		qb = qb.Where(squirrel.Eq{"contact_phone": *f.Phone})
	}
	if f.FirstName != nil {
		qb = qb.Where(squirrel.Eq{"contact_first_name": *f.FirstName})
	}
	if f.LastName != nil {
		qb = qb.Where(squirrel.Eq{"contact_last_name": *f.LastName})
	}
	return qb
}

func (r *Repo) selectMany(ctx context.Context, sql string, args []any) ([]domain.InspectionBody, error) {
	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select bodies: %w", err)
	}

	out := make([]domain.InspectionBody, len(rows))
	for i, rw := range rows {
		out[i] = *toDomain(rw)
	}
	return out, nil
}

func toDomain(r row) *domain.InspectionBody {
	return &domain.InspectionBody{
		ID:           r.ID,
		Name:         r.Name,
		Jurisdiction: domain.Jurisdiction(r.Jurisdiction),
		Competence:   domain.Competence(r.Competence),
		Contact: domain.Contact{
			FirstName: r.ContactFirstName,
			LastName:  r.ContactLastName,
			Phone:     r.ContactPhone,
			Email:     r.ContactEmail,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
