package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/phrazzld/workout-api/internal/store"
)

const entityExercise = "exercise"

// ExerciseStore implements the store.ExerciseStore interface on database/sql.
type ExerciseStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewExerciseStore creates a new SQL implementation of the ExerciseStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewExerciseStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *ExerciseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ExerciseStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "exercise_store")),
	}
}

// Ensure ExerciseStore implements store.ExerciseStore interface
var _ store.ExerciseStore = (*ExerciseStore)(nil)

// WithTx implements store.ExerciseStore.WithTx
func (s *ExerciseStore) WithTx(tx *sql.Tx) store.ExerciseStore {
	return &ExerciseStore{
		db:      tx,
		dialect: s.dialect,
		logger:  s.logger,
	}
}

// Create implements store.ExerciseStore.Create
func (s *ExerciseStore) Create(ctx context.Context, exercise *domain.Exercise) (err error) {
	defer observe(entityExercise, "create", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.dialect.Rebind(`
		INSERT INTO exercises (name, category, equipment_needed)
		VALUES (?, ?, ?)
		RETURNING id
	`)
	err = s.db.QueryRowContext(ctx, query,
		exercise.Name,
		exercise.Category,
		exercise.EquipmentNeeded,
	).Scan(&exercise.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("exercise name already exists",
				slog.String("name", exercise.Name))
			return fmt.Errorf("%w: %q", store.ErrExerciseNameExists, exercise.Name)
		}
		log.Error("failed to create exercise",
			slog.String("error", err.Error()),
			slog.String("name", exercise.Name))
		return store.NewStoreError(entityExercise, "create", "insert failed", MapError(err))
	}

	log.Info("exercise created successfully",
		slog.Int64("exercise_id", exercise.ID),
		slog.String("name", exercise.Name))
	return nil
}

// GetByID implements store.ExerciseStore.GetByID
func (s *ExerciseStore) GetByID(ctx context.Context, id int64) (_ *domain.Exercise, err error) {
	defer observe(entityExercise, "get", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.dialect.Rebind(`
		SELECT id, name, category, equipment_needed
		FROM exercises
		WHERE id = ?
	`)

	var e domain.Exercise
	err = s.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Category, &e.EquipmentNeeded)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("exercise not found", slog.Int64("exercise_id", id))
			return nil, store.ErrExerciseNotFound
		}
		log.Error("failed to get exercise by ID",
			slog.String("error", err.Error()),
			slog.Int64("exercise_id", id))
		return nil, store.NewStoreError(entityExercise, "get", "query failed", err)
	}
	return &e, nil
}

// List implements store.ExerciseStore.List
func (s *ExerciseStore) List(ctx context.Context) (_ []domain.Exercise, err error) {
	defer observe(entityExercise, "list", time.Now(), &err)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, equipment_needed
		FROM exercises
		ORDER BY id
	`)
	if err != nil {
		return nil, store.NewStoreError(entityExercise, "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.EquipmentNeeded); err != nil {
			return nil, store.NewStoreError(entityExercise, "list", "scan failed", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(entityExercise, "list", "row iteration failed", err)
	}
	return exercises, nil
}

// ListWorkouts implements store.ExerciseStore.ListWorkouts
func (s *ExerciseStore) ListWorkouts(ctx context.Context, exerciseID int64) (_ []domain.WorkoutSummary, err error) {
	defer observe(entityExercise, "list_workouts", time.Now(), &err)

	query := s.dialect.Rebind(`
		SELECT DISTINCT w.id, w.date, w.duration_minutes
		FROM workouts w
		JOIN workout_exercises we ON we.workout_id = w.id
		WHERE we.exercise_id = ?
		ORDER BY w.id
	`)
	rows, err := s.db.QueryContext(ctx, query, exerciseID)
	if err != nil {
		return nil, store.NewStoreError(entityExercise, "list_workouts", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := []domain.WorkoutSummary{}
	for rows.Next() {
		var w domain.WorkoutSummary
		if err := rows.Scan(&w.ID, &w.Date, &w.DurationMinutes); err != nil {
			return nil, store.NewStoreError(entityExercise, "list_workouts", "scan failed", err)
		}
		summaries = append(summaries, w)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(entityExercise, "list_workouts", "row iteration failed", err)
	}
	return summaries, nil
}

// Delete implements store.ExerciseStore.Delete
// Join rows are removed explicitly so the cascade holds even on a SQLite
// connection opened without foreign key enforcement.
func (s *ExerciseStore) Delete(ctx context.Context, id int64) (err error) {
	defer observe(entityExercise, "delete", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err = s.db.ExecContext(ctx,
		s.dialect.Rebind(`DELETE FROM workout_exercises WHERE exercise_id = ?`), id); err != nil {
		log.Error("failed to delete workout exercises of exercise",
			slog.String("error", err.Error()),
			slog.Int64("exercise_id", id))
		return store.NewStoreError(entityExercise, "delete", "cascade failed", err)
	}

	result, err := s.db.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM exercises WHERE id = ?`), id)
	if err != nil {
		log.Error("failed to delete exercise",
			slog.String("error", err.Error()),
			slog.Int64("exercise_id", id))
		return store.NewStoreError(entityExercise, "delete", "delete failed", err)
	}
	if err = CheckRowsAffected(result, store.ErrExerciseNotFound); err != nil {
		return err
	}

	log.Info("exercise deleted successfully", slog.Int64("exercise_id", id))
	return nil
}
