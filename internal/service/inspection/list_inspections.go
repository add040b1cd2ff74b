package inspection

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

// GetByID returns an inspection with its body and product attached.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	in, err := s.inspections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.hydrateOne(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

// List returns the inspections matching every criterion of filter, with
// bodies and products attached. A body or product named by the filter must
// exist.
func (s *Service) List(ctx context.Context, filter domain.InspectionFilter) ([]domain.Inspection, error) {
	filter, err := s.prepareFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.inspections.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}
	if err := s.hydrate(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// prepareFilter validates f, normalizes its dates and resolves its references.
func (s *Service) prepareFilter(ctx context.Context, f domain.InspectionFilter) (domain.InspectionFilter, error) {
	if err := f.Validate(); err != nil {
		return f, err
	}
	f.Date = calendarPtr(f.Date)
	f.From = calendarPtr(f.From)
	f.To = calendarPtr(f.To)
	if err := s.resolveFilter(ctx, f); err != nil {
		return f, err
	}
	return f, nil
}

// ListAll returns every inspection in insertion order.
func (s *Service) ListAll(ctx context.Context) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{})
}

// ListNewestFirst returns every inspection, most recent date first.
func (s *Service) ListNewestFirst(ctx context.Context) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{Sort: domain.InspectionSortNewest})
}

// ListByDate returns the inspections performed on date.
func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{Date: &date})
}

// ListByPeriod returns the inspections between from and to, both inclusive.
func (s *Service) ListByPeriod(ctx context.Context, from, to time.Time) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{From: &from, To: &to})
}

// ListFrom returns the inspections on or after from.
func (s *Service) ListFrom(ctx context.Context, from time.Time) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{From: &from})
}

// ListUntil returns the inspections on or before to.
func (s *Service) ListUntil(ctx context.Context, to time.Time) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{To: &to})
}

// ListByBody returns the inspections performed by a body.
func (s *Service) ListByBody(ctx context.Context, bodyID uuid.UUID) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{BodyID: &bodyID})
}

// ListByProduct returns the inspections of a product.
func (s *Service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{ProductID: &productID})
}

// ListBySafety returns the inspections with the given verdict.
func (s *Service) ListBySafety(ctx context.Context, safe bool) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{Safe: &safe})
}

// ListUnsafe returns the inspections that found the product unsafe.
func (s *Service) ListUnsafe(ctx context.Context) ([]domain.Inspection, error) {
	return s.ListBySafety(ctx, false)
}

// ListByBodyAndSafety returns a body's inspections with the given verdict.
func (s *Service) ListByBodyAndSafety(ctx context.Context, bodyID uuid.UUID, safe bool) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{BodyID: &bodyID, Safe: &safe})
}

// ListByProductAndSafety returns a product's inspections with the given verdict.
func (s *Service) ListByProductAndSafety(ctx context.Context, productID uuid.UUID, safe bool) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{ProductID: &productID, Safe: &safe})
}

// ListByFilter combines the optional body, period and verdict criteria.
func (s *Service) ListByFilter(ctx context.Context, bodyID *uuid.UUID, from, to *time.Time, safe *bool) ([]domain.Inspection, error) {
	return s.List(ctx, domain.InspectionFilter{BodyID: bodyID, From: from, To: to, Safe: safe})
}

func calendarPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.CalendarDate(*t)
	return &d
}
