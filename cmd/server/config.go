package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/workout-api/internal/config"
)

// loadAppConfig loads the application configuration from defaults, an
// optional config.yaml and WORKOUTS_* environment variables.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logAppConfig logs the non-sensitive parts of cfg.
func logAppConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"auto_migrate", cfg.Database.AutoMigrate)
	logger.Debug("Database configuration", "url_present", cfg.Database.URL != "")
}
