package body

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

// GetByID returns a body by id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.InspectionBody, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.bodies.GetByID(ctx, id)
}

// GetByName returns the body with exactly this (trimmed) name.
func (s *Service) GetByName(ctx context.Context, name string) (*domain.InspectionBody, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	b, err := s.bodies.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get body by name %q: %w", name, err)
	}
	return b, nil
}

// List returns the bodies matching filter. Contact email and phone are
// normalized the same way they are stored.
func (s *Service) List(ctx context.Context, filter domain.BodyFilter) ([]domain.InspectionBody, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return s.bodies.List(ctx, normalizeFilter(filter))
}

// ListSortedByName returns all bodies ordered by name.
func (s *Service) ListSortedByName(ctx context.Context) ([]domain.InspectionBody, error) {
	return s.bodies.List(ctx, domain.BodyFilter{SortByName: true})
}

// Count returns the number of bodies matching filter.
func (s *Service) Count(ctx context.Context, filter domain.BodyFilter) (int, error) {
	if err := validateFilter(filter); err != nil {
		return 0, err
	}
	return s.bodies.Count(ctx, normalizeFilter(filter))
}

// CountByJurisdiction returns the number of bodies in j.
func (s *Service) CountByJurisdiction(ctx context.Context, j domain.Jurisdiction) (int, error) {
	return s.Count(ctx, domain.BodyFilter{Jurisdiction: &j})
}

// CountByCompetence returns the number of bodies with competence c.
func (s *Service) CountByCompetence(ctx context.Context, c domain.Competence) (int, error) {
	return s.Count(ctx, domain.BodyFilter{Competence: &c})
}

// Jurisdictions lists the selectable jurisdictions.
func (s *Service) Jurisdictions() []domain.Jurisdiction {
	return append([]domain.Jurisdiction(nil), domain.AllJurisdictions...)
}

// Competences lists the selectable competences.
func (s *Service) Competences() []domain.Competence {
	return append([]domain.Competence(nil), domain.AllCompetences...)
}

func validateFilter(f domain.BodyFilter) error {
	var errs []domain.FieldError
	if f.Jurisdiction != nil && !f.Jurisdiction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "jurisdiction", Message: "invalid value"})
	}
	if f.Competence != nil && !f.Competence.IsValid() {
		errs = append(errs, domain.FieldError{Field: "competence", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func normalizeFilter(f domain.BodyFilter) domain.BodyFilter {
	if f.Email != nil {
		e := domain.NormalizeEmail(*f.Email)
		f.Email = &e
	}
	if f.Phone != nil {
		p := domain.NormalizePhone(*f.Phone)
		f.Phone = &p
	}
	if f.NameContains != nil {
		f.NameContains = trimmed(*f.NameContains)
	}
	if f.FirstName != nil {
		f.FirstName = trimmed(*f.FirstName)
	}
	if f.LastName != nil {
		f.LastName = trimmed(*f.LastName)
	}
	return f
}
