package report

import (
	"context"
	"fmt"

	"github.com/heartmarshall/inspection-registry/internal/domain"
)

// Build collects the inspections matching filter. The verdict counts are
// taken from the same rows, so they always agree with the listing.
func (s *Service) Build(ctx context.Context, filter domain.InspectionFilter) (*Report, error) {
	items, err := s.inspections.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	return &Report{
		Filter:      filter,
		Inspections: items,
		Stats:       tally(items),
		GeneratedAt: s.now().UTC(),
	}, nil
}

func tally(items []domain.Inspection) domain.InspectionStats {
	st := domain.InspectionStats{Total: len(items)}
	for _, it := range items {
		if it.Safe {
			st.Safe++
		}
	}
	st.Unsafe = st.Total - st.Safe
	return st
}
