package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/deppfellow/travelog/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// The binary carries its own schema.
//
//go:embed migrations/*.sql
var migrations embed.FS

// versionTable is where tern records the applied schema version.
const versionTable = "schema_version"

// Migrate brings the schema up to the latest embedded migration.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	return MigrateTo(ctx, logger, cfg, -1)
}

// MigrateTo moves the schema to version; a negative version means latest.
// Version 0 drops every table.
func MigrateTo(ctx context.Context, logger *zerolog.Logger, cfg *config.Config, version int32) error {
	return MigrateDSN(ctx, logger, DSN(cfg.Database), version)
}

// MigrateDSN is MigrateTo against an explicit connection string.
func MigrateDSN(ctx context.Context, logger *zerolog.Logger, dsn string, version int32) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	target := version
	if target < 0 {
		target = int32(len(m.Migrations))
	}

	if err := m.MigrateTo(ctx, target); err != nil {
		return fmt.Errorf("migrating from %d to %d: %w", from, target, err)
	}

	if from == target {
		logger.Info().Msgf("database schema up to date, version %d", target)
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, target)
	}
	return nil
}
