// Package report renders inspection listings as CSV and archives them.
package report

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/internal/metrics"
)

// ErrArchiveDisabled is returned by Archive when no store is configured.
var ErrArchiveDisabled = errors.New("report archive disabled")

type inspectionQuerier interface {
	List(ctx context.Context, filter domain.InspectionFilter) ([]domain.Inspection, error)
}

type archiveStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// Report is a snapshot of the inspections matching a filter.
type Report struct {
	Filter      domain.InspectionFilter
	Inspections []domain.Inspection
	Stats       domain.InspectionStats
	GeneratedAt time.Time
}

// Service builds and archives reports.
type Service struct {
	inspections inspectionQuerier
	store       archiveStore
	metrics     *metrics.Metrics
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a report service. store may be nil to disable archival.
func NewService(log *slog.Logger, inspections inspectionQuerier, store archiveStore, m *metrics.Metrics) *Service {
	return &Service{
		inspections: inspections,
		store:       store,
		metrics:     m,
		now:         time.Now,
		log:         log.With("service", "report"),
	}
}

// ArchiveEnabled reports whether Archive can store reports.
func (s *Service) ArchiveEnabled() bool {
	return s.store != nil
}
