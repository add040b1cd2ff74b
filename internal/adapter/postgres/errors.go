package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

// SQLSTATE codes the registry reacts to.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeNotNullViolation     = "23502"
	codeStringTooLong        = "22001"
	codeInvalidDatetime      = "22007"
	codeBadCharacter         = "22021"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// MapError translates a pgx error on entity id into the domain error
// vocabulary. Context cancellation is wrapped but never reclassified.
func MapError(err error, entity domain.EntityType, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError(entity, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if target := classify(pgErr.Code); target != nil {
			return fmt.Errorf("%s %s: %s: %w", entity, id, describe(pgErr), target)
		}
	}
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// MapDeleteError is MapError for DELETE statements: a foreign key violation
// means the row is still referenced, which is a conflict.
func MapDeleteError(err error, entity domain.EntityType, id uuid.UUID) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return fmt.Errorf("%s %s is still referenced: %w", entity, id, domain.ErrConflict)
	}
	return MapError(err, entity, id)
}

func classify(code string) error {
	switch code {
	case codeUniqueViolation:
		return domain.ErrAlreadyExists
	case codeForeignKeyViolation:
		return domain.ErrNotFound
	case codeCheckViolation, codeNotNullViolation, codeStringTooLong, codeInvalidDatetime, codeBadCharacter:
		return domain.ErrValidation
	case codeSerializationFailure, codeDeadlockDetected:
		return domain.ErrConflict
	}
	return nil
}

func describe(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return "constraint " + pgErr.ConstraintName
	}
	return "sqlstate " + pgErr.Code
}
