// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/inspection-registry/internal/adapter/postgres"
	"github.com/heartmarshall/inspection-registry/internal/domain"
)

var columns = []string{"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at"}

type row struct {
	ID         uuid.UUID  `db:"id"`
	UserID     *uuid.UUID `db:"user_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// Zero ID and CreatedAt are filled in.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	var changes []byte
	if record.Changes != nil {
		var err error
		if changes, err = json.Marshal(record.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
		}
	}

	sql, args, err := postgres.Builder().
		Insert("audit_log").
		Columns(columns...).
		Values(record.ID, record.UserID, string(record.EntityType), record.EntityID,
			string(record.Action), changes, record.CreatedAt).
		Suffix("RETURNING id, user_id, entity_type, entity_id, action, changes, created_at").
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build insert audit_record: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record %s: %w", record.ID, err)
	}

	return toDomain(out)
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interfaces of the registry services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("audit_log").
		Where(squirrel.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit_records by entity: %w", err)
	}

	return r.selectMany(ctx, sql, args)
}

// GetByUser returns audit log records for a user, ordered by created_at DESC
// with pagination.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("audit_log").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit_records by user: %w", err)
	}

	return r.selectMany(ctx, sql, args)
}

func (r *Repo) selectMany(ctx context.Context, sql string, args []any) ([]domain.AuditRecord, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select audit_records: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, rw := range rows {
		rec, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// toDomain converts a row into a domain.AuditRecord.
func toDomain(r row) (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:         r.ID,
		UserID:     r.UserID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		CreatedAt:  r.CreatedAt,
	}

	// changes: JSONB -> map[string]any
	if len(r.Changes) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(r.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", r.ID, err)
		}
		record.Changes = changes
	}

	return record, nil
}
