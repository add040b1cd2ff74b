package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/inspection-registry/internal/adapter/postgres"
)

// Migrate applies every pending migration to the database at dsn.
func Migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	applied, err := m.Up(ctx)
	if err != nil {
		return err
	}
	logger.Info("migrations applied", slog.Int("count", len(applied)), slog.Any("versions", applied))
	return nil
}

// MigrationStatus reports the state of every known migration.
func MigrationStatus(ctx context.Context, dsn string) ([]postgres.MigrationState, error) {
	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	return m.Status(ctx)
}
