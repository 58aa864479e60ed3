package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/workout-api/internal/config"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/sqlstore"
	"github.com/phrazzld/workout-api/internal/seed"
	"github.com/phrazzld/workout-api/internal/service"
	"github.com/phrazzld/workout-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB

	// Stores
	exerciseStore        store.ExerciseStore
	workoutStore         store.WorkoutStore
	workoutExerciseStore store.WorkoutExerciseStore

	// Services
	exerciseService service.ExerciseService
	workoutService  service.WorkoutService
}

// newApplication wires stores and services over an open, migrated database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB, dialect sqlstore.Dialect) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.exerciseStore = sqlstore.NewExerciseStore(db, dialect, logger)
	app.workoutStore = sqlstore.NewWorkoutStore(db, dialect, logger)
	app.workoutExerciseStore = sqlstore.NewWorkoutExerciseStore(db, dialect, logger)

	var err error
	app.exerciseService, err = service.NewExerciseService(db, app.exerciseStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise service: %w", err)
	}

	app.workoutService, err = service.NewWorkoutService(
		db,
		app.workoutStore,
		app.exerciseStore,
		app.workoutExerciseStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create workout service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is done, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// seed replaces the database contents with the demo data set.
func (app *application) seed(ctx context.Context, date domain.Date) error {
	if _, err := seed.Run(ctx, app.exerciseService, app.workoutService, date, app.logger); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
	app.logger.Info("Application shutdown completed")
}
