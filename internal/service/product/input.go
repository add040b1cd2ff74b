package product

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 1000
)

// CreateInput holds the parameters for registering a product.
type CreateInput struct {
	Name         string
	Manufacturer string
	Country      domain.Country
	Description  *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	if errs := i.fieldErrors(""); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) fieldErrors(prefix string) []domain.FieldError {
	var errs []domain.FieldError
	errs = append(errs, textErrors(prefix+"name", i.Name)...)
	errs = append(errs, textErrors(prefix+"manufacturer", i.Manufacturer)...)
	if !i.Country.IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + "country", Message: "invalid value"})
	}
	if i.Description != nil && domain.CharCount(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{
			Field:   prefix + "description",
			Message: fmt.Sprintf("max %d characters", maxDescriptionLength),
		})
	}
	return errs
}

func (i CreateInput) normalized() *domain.Product {
	return &domain.Product{
		Name:         strings.TrimSpace(i.Name),
		Manufacturer: strings.TrimSpace(i.Manufacturer),
		Country:      i.Country,
		Description:  optionalText(i.Description),
	}
}

// UpdateInput holds the parameters for a partial update. Nil fields are
// unchanged; an empty Description clears it.
type UpdateInput struct {
	ID           uuid.UUID
	Name         *string
	Manufacturer *string
	Country      *domain.Country
	Description  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Manufacturer == nil && i.Country == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, textErrors("name", *i.Name)...)
	}
	if i.Manufacturer != nil {
		errs = append(errs, textErrors("manufacturer", *i.Manufacturer)...)
	}
	if i.Country != nil && !i.Country.IsValid() {
		errs = append(errs, domain.FieldError{Field: "country", Message: "invalid value"})
	}
	if i.Description != nil && domain.CharCount(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// params converts the input into repository update params. The serial code
// is decided by the caller.
func (i UpdateInput) params() domain.ProductUpdateParams {
	p := domain.ProductUpdateParams{Country: i.Country}
	if i.Name != nil {
		p.Name = trimmed(*i.Name)
	}
	if i.Manufacturer != nil {
		p.Manufacturer = trimmed(*i.Manufacturer)
	}
	if i.Description != nil {
		if d := optionalText(i.Description); d != nil {
			p.Description = d
		} else {
			p.ClearDescription = true
		}
	}
	return p
}

func textErrors(field, value string) []domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if domain.CharCount(value) > maxNameLength {
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("max %d characters", maxNameLength)}}
	}
	return nil
}

// optionalText trims s and maps blank to nil.
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

func trimmed(s string) *string {
	t := strings.TrimSpace(s)
	return &t
}
