package inspection

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

// Count returns the number of inspections matching filter.
func (s *Service) Count(ctx context.Context, filter domain.InspectionFilter) (int, error) {
	filter, err := s.prepareFilter(ctx, filter)
	if err != nil {
		return 0, err
	}

	n, err := s.inspections.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count inspections: %w", err)
	}
	return n, nil
}

// Stats returns total, safe and unsafe counts for inspections matching filter.
func (s *Service) Stats(ctx context.Context, filter domain.InspectionFilter) (domain.InspectionStats, error) {
	filter, err := s.prepareFilter(ctx, filter)
	if err != nil {
		return domain.InspectionStats{}, err
	}

	st, err := s.inspections.Stats(ctx, filter)
	if err != nil {
		return domain.InspectionStats{}, fmt.Errorf("inspection stats: %w", err)
	}
	return st, nil
}

func (s *Service) CountAll(ctx context.Context) (int, error) {
	return s.Count(ctx, domain.InspectionFilter{})
}

func (s *Service) CountBySafety(ctx context.Context, safe bool) (int, error) {
	return s.Count(ctx, domain.InspectionFilter{Safe: &safe})
}

// CountByBody fails with a NotFoundError when the body does not exist.
func (s *Service) CountByBody(ctx context.Context, bodyID uuid.UUID) (int, error) {
	return s.Count(ctx, domain.InspectionFilter{BodyID: &bodyID})
}

// CountByProduct fails with a NotFoundError when the product does not exist.
func (s *Service) CountByProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	return s.Count(ctx, domain.InspectionFilter{ProductID: &productID})
}

func (s *Service) CountByDate(ctx context.Context, date time.Time) (int, error) {
	return s.Count(ctx, domain.InspectionFilter{Date: &date})
}
