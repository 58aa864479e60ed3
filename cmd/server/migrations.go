package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/workout-api/internal/platform/sqlstore"
)

// handleMigrations runs a single -migrate command against db.
func handleMigrations(
	ctx context.Context,
	db *sql.DB,
	dialect sqlstore.Dialect,
	command string,
	logger *slog.Logger,
) error {
	logger.Info("Executing migrations", "command", command, "dialect", string(dialect))
	return sqlstore.Migrate(ctx, db, dialect, command, logger)
}
