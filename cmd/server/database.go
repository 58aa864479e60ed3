package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/workout-api/internal/config"
	"github.com/phrazzld/workout-api/internal/platform/sqlstore"
)

// setupAppDatabase opens and pings the configured database.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (sqlstore.Dialect, *sql.DB, error) {
	dialect, err := sqlstore.ParseDialect(cfg.Database.Driver)
	if err != nil {
		return "", nil, fmt.Errorf("failed to select database driver: %w", err)
	}

	db, err := sqlstore.Open(ctx, dialect, cfg.Database.URL, cfg.Database.MaxOpenConns, logger)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open database: %w", err)
	}

	return dialect, db, nil
}

func closeDB(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("Error closing database connection", "error", err)
	}
}
