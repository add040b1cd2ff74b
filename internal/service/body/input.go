package body

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

const maxNameLength = 200

// CreateInput holds the parameters for registering an inspection body.
type CreateInput struct {
	Name         string
	Jurisdiction domain.Jurisdiction
	Competence   domain.Competence
	FirstName    string
	LastName     string
	Phone        string
	Email        string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	errs := i.fieldErrors("")
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) fieldErrors(prefix string) []domain.FieldError {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: prefix + field, Message: msg})
	}

	errs = append(errs, nameErrors(prefix, i.Name)...)
	if !i.Jurisdiction.IsValid() {
		add("jurisdiction", "invalid value")
	}
	if !i.Competence.IsValid() {
		add("competence", "invalid value")
	}
	if strings.TrimSpace(i.FirstName) == "" {
		add("contact.first_name", "required")
	}
	if strings.TrimSpace(i.LastName) == "" {
		add("contact.last_name", "required")
	}
	errs = append(errs, phoneErrors(prefix, i.Phone)...)
	errs = append(errs, emailErrors(prefix, i.Email)...)
	return errs
}

// normalized returns the body with trimmed names and canonical contact data.
func (i CreateInput) normalized() *domain.InspectionBody {
	return &domain.InspectionBody{
		Name:         strings.TrimSpace(i.Name),
		Jurisdiction: i.Jurisdiction,
		Competence:   i.Competence,
		Contact: domain.Contact{
			FirstName: strings.TrimSpace(i.FirstName),
			LastName:  strings.TrimSpace(i.LastName),
			Phone:     domain.NormalizePhone(i.Phone),
			Email:     domain.NormalizeEmail(i.Email),
		},
	}
}

// UpdateInput holds the parameters for a partial update. Nil fields are unchanged.
type UpdateInput struct {
	ID           uuid.UUID
	Name         *string
	Jurisdiction *domain.Jurisdiction
	Competence   *domain.Competence
	FirstName    *string
	LastName     *string
	Phone        *string
	Email        *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Jurisdiction == nil && i.Competence == nil &&
		i.FirstName == nil && i.LastName == nil && i.Phone == nil && i.Email == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, nameErrors("", *i.Name)...)
	}
	if i.Jurisdiction != nil && !i.Jurisdiction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "jurisdiction", Message: "invalid value"})
	}
	if i.Competence != nil && !i.Competence.IsValid() {
		errs = append(errs, domain.FieldError{Field: "competence", Message: "invalid value"})
	}
	if i.FirstName != nil && strings.TrimSpace(*i.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: "contact.first_name", Message: "required"})
	}
	if i.LastName != nil && strings.TrimSpace(*i.LastName) == "" {
		errs = append(errs, domain.FieldError{Field: "contact.last_name", Message: "required"})
	}
	if i.Phone != nil {
		errs = append(errs, phoneErrors("", *i.Phone)...)
	}
	if i.Email != nil {
		errs = append(errs, emailErrors("", *i.Email)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// params converts the input into repository update params with normalized values.
func (i UpdateInput) params() domain.InspectionBodyUpdateParams {
	p := domain.InspectionBodyUpdateParams{
		Jurisdiction: i.Jurisdiction,
		Competence:   i.Competence,
	}
	if i.Name != nil {
		p.Name = trimmed(*i.Name)
	}
	if i.FirstName != nil {
		p.FirstName = trimmed(*i.FirstName)
	}
	if i.LastName != nil {
		p.LastName = trimmed(*i.LastName)
	}
	if i.Phone != nil {
		phone := domain.NormalizePhone(*i.Phone)
		p.Phone = &phone
	}
	if i.Email != nil {
		email := domain.NormalizeEmail(*i.Email)
		p.Email = &email
	}
	return p
}

func nameErrors(prefix, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: prefix + "name", Message: "required"}}
	}
	if domain.CharCount(name) > maxNameLength {
		return []domain.FieldError{{Field: prefix + "name", Message: fmt.Sprintf("max %d characters", maxNameLength)}}
	}
	return nil
}

func phoneErrors(prefix, phone string) []domain.FieldError {
	phone = domain.NormalizePhone(phone)
	if phone == "" {
		return []domain.FieldError{{Field: prefix + "contact.phone", Message: "required"}}
	}
	if !domain.ValidPhone(phone) {
		return []domain.FieldError{{Field: prefix + "contact.phone", Message: "must be an international number like +38761123456"}}
	}
	return nil
}

func emailErrors(prefix, email string) []domain.FieldError {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return []domain.FieldError{{Field: prefix + "contact.email", Message: "required"}}
	}
	if !domain.ValidEmail(email) {
		return []domain.FieldError{{Field: prefix + "contact.email", Message: "invalid email address"}}
	}
	return nil
}

func trimmed(s string) *string {
	t := strings.TrimSpace(s)
	return &t
}
