package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

const contentTypeCSV = "text/csv; charset=utf-8"

// Archive renders r as CSV and stores it under
// reports/<yyyy>/<mm>/<timestamp>_<uuid>.csv, returning the key.
func (s *Service) Archive(ctx context.Context, r *Report) (string, error) {
	if s.store == nil {
		return "", ErrArchiveDisabled
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, r); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	key := archiveKey(r, uuid.New())
	if err := s.store.Put(ctx, key, buf.Bytes(), contentTypeCSV); err != nil {
		return "", fmt.Errorf("archive report: %w", err)
	}

	s.metrics.ReportArchived()
	s.log.InfoContext(ctx, "report archived",
		slog.String("key", key),
		slog.Int("inspections", len(r.Inspections)),
	)

	return key, nil
}

func archiveKey(r *Report, id uuid.UUID) string {
	ts := r.GeneratedAt.UTC()
	return fmt.Sprintf("reports/%04d/%02d/%s_%s.csv", ts.Year(), int(ts.Month()), ts.Format("20060102T150405Z"), id)
}
