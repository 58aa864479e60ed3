package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/phrazzld/workout-api/internal/store"
)

const entityWorkout = "workout"

// WorkoutStore implements the store.WorkoutStore interface on database/sql.
type WorkoutStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewWorkoutStore creates a new SQL implementation of the WorkoutStore interface.
// If logger is nil, a default logger will be used.
func NewWorkoutStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *WorkoutStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WorkoutStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "workout_store")),
	}
}

// Ensure WorkoutStore implements store.WorkoutStore interface
var _ store.WorkoutStore = (*WorkoutStore)(nil)

// WithTx implements store.WorkoutStore.WithTx
func (s *WorkoutStore) WithTx(tx *sql.Tx) store.WorkoutStore {
	return &WorkoutStore{
		db:      tx,
		dialect: s.dialect,
		logger:  s.logger,
	}
}

// Create implements store.WorkoutStore.Create
func (s *WorkoutStore) Create(ctx context.Context, workout *domain.Workout) (err error) {
	defer observe(entityWorkout, "create", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.dialect.Rebind(`
		INSERT INTO workouts (date, duration_minutes, notes)
		VALUES (?, ?, ?)
		RETURNING id
	`)
	err = s.db.QueryRowContext(ctx, query,
		workout.Date,
		workout.DurationMinutes,
		workout.Notes,
	).Scan(&workout.ID)
	if err != nil {
		log.Error("failed to create workout",
			slog.String("error", err.Error()),
			slog.String("date", workout.Date.String()))
		return store.NewStoreError(entityWorkout, "create", "insert failed", MapError(err))
	}
	if workout.WorkoutExercises == nil {
		workout.WorkoutExercises = []domain.WorkoutExercise{}
	}

	log.Info("workout created successfully",
		slog.Int64("workout_id", workout.ID),
		slog.String("date", workout.Date.String()))
	return nil
}

// GetByID implements store.WorkoutStore.GetByID
func (s *WorkoutStore) GetByID(ctx context.Context, id int64) (_ *domain.Workout, err error) {
	defer observe(entityWorkout, "get", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.dialect.Rebind(`
		SELECT id, date, duration_minutes, notes
		FROM workouts
		WHERE id = ?
	`)

	w := domain.Workout{WorkoutExercises: []domain.WorkoutExercise{}}
	err = s.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Date, &w.DurationMinutes, &w.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("workout not found", slog.Int64("workout_id", id))
			return nil, store.ErrWorkoutNotFound
		}
		log.Error("failed to get workout by ID",
			slog.String("error", err.Error()),
			slog.Int64("workout_id", id))
		return nil, store.NewStoreError(entityWorkout, "get", "query failed", err)
	}
	return &w, nil
}

// List implements store.WorkoutStore.List
func (s *WorkoutStore) List(ctx context.Context) (_ []domain.Workout, err error) {
	defer observe(entityWorkout, "list", time.Now(), &err)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, duration_minutes, notes
		FROM workouts
		ORDER BY id
	`)
	if err != nil {
		return nil, store.NewStoreError(entityWorkout, "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	workouts := []domain.Workout{}
	for rows.Next() {
		w := domain.Workout{WorkoutExercises: []domain.WorkoutExercise{}}
		if err := rows.Scan(&w.ID, &w.Date, &w.DurationMinutes, &w.Notes); err != nil {
			return nil, store.NewStoreError(entityWorkout, "list", "scan failed", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(entityWorkout, "list", "row iteration failed", err)
	}
	return workouts, nil
}

// Delete implements store.WorkoutStore.Delete
func (s *WorkoutStore) Delete(ctx context.Context, id int64) (err error) {
	defer observe(entityWorkout, "delete", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err = s.db.ExecContext(ctx,
		s.dialect.Rebind(`DELETE FROM workout_exercises WHERE workout_id = ?`), id); err != nil {
		log.Error("failed to delete workout exercises of workout",
			slog.String("error", err.Error()),
			slog.Int64("workout_id", id))
		return store.NewStoreError(entityWorkout, "delete", "cascade failed", err)
	}

	result, err := s.db.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM workouts WHERE id = ?`), id)
	if err != nil {
		log.Error("failed to delete workout",
			slog.String("error", err.Error()),
			slog.Int64("workout_id", id))
		return store.NewStoreError(entityWorkout, "delete", "delete failed", err)
	}
	if err = CheckRowsAffected(result, store.ErrWorkoutNotFound); err != nil {
		return err
	}

	log.Info("workout deleted successfully", slog.Int64("workout_id", id))
	return nil
}
