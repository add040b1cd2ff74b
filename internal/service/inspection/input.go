package inspection

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

const maxResultsLength = 2000

// CreateInput holds the parameters for recording an inspection.
type CreateInput struct {
	Date      *time.Time
	BodyID    uuid.UUID
	ProductID uuid.UUID
	Results   *string
	Safe      *bool
}

// Validate checks all fields against today and collects all errors.
func (i CreateInput) Validate(today time.Time) error {
	if errs := i.fieldErrors("", today); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) fieldErrors(prefix string, today time.Time) []domain.FieldError {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: prefix + field, Message: msg})
	}

	if i.Date == nil {
		add("date", "required")
	} else if inFuture(*i.Date, today) {
		add("date", "must not be in the future")
	}
	if i.BodyID == uuid.Nil {
		add("body_id", "required")
	}
	if i.ProductID == uuid.Nil {
		add("product_id", "required")
	}
	if i.Safe == nil {
		add("safe", "required")
	}
	if i.Results != nil && domain.CharCount(strings.TrimSpace(*i.Results)) > maxResultsLength {
		add("results", fmt.Sprintf("max %d characters", maxResultsLength))
	}
	return errs
}

func (i CreateInput) inspection() *domain.Inspection {
	return &domain.Inspection{
		Date:      domain.CalendarDate(*i.Date),
		BodyID:    i.BodyID,
		ProductID: i.ProductID,
		Results:   optionalText(i.Results),
		Safe:      *i.Safe,
	}
}

// UpdateInput holds the parameters for a partial update. Nil fields are
// unchanged; an empty Results clears it.
type UpdateInput struct {
	ID        uuid.UUID
	Date      *time.Time
	BodyID    *uuid.UUID
	ProductID *uuid.UUID
	Results   *string
	Safe      *bool
}

// Validate checks all fields against today and collects all errors.
func (i UpdateInput) Validate(today time.Time) error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Date == nil && i.BodyID == nil && i.ProductID == nil && i.Results == nil && i.Safe == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Date != nil && inFuture(*i.Date, today) {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must not be in the future"})
	}
	if i.BodyID != nil && *i.BodyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "body_id", Message: "required"})
	}
	if i.ProductID != nil && *i.ProductID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "required"})
	}
	if i.Results != nil && domain.CharCount(strings.TrimSpace(*i.Results)) > maxResultsLength {
		errs = append(errs, domain.FieldError{Field: "results", Message: fmt.Sprintf("max %d characters", maxResultsLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) params() domain.InspectionUpdateParams {
	p := domain.InspectionUpdateParams{
		BodyID:    i.BodyID,
		ProductID: i.ProductID,
		Safe:      i.Safe,
	}
	if i.Date != nil {
		d := domain.CalendarDate(*i.Date)
		p.Date = &d
	}
	if i.Results != nil {
		if r := optionalText(i.Results); r != nil {
			p.Results = r
		} else {
			p.ClearResults = true
		}
	}
	return p
}

func inFuture(date, today time.Time) bool {
	return domain.CalendarDate(date).After(domain.CalendarDate(today))
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
