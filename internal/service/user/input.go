package user

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/inspection-registry/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ActivityInput pages through the caller's own audit records.
// Zero Limit means DefaultLimit.
type ActivityInput struct {
	Limit  int
	Offset int
}

func (i *ActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit == 0 {
		i.Limit = DefaultLimit
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// HistoryInput selects the audit trail of one registry entity.
type HistoryInput struct {
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Limit      int
}

func (i *HistoryInput) Validate() error {
	var errs []domain.FieldError

	switch i.EntityType {
	case domain.EntityTypeInspectionBody, domain.EntityTypeProduct, domain.EntityTypeInspection:
	default:
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "unknown entity type"})
	}
	if i.EntityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}
	if i.Limit == 0 {
		i.Limit = DefaultLimit
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 200"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
