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

const entityWorkoutExercise = "workout_exercise"

// selectWorkoutExercise reads join rows together with their exercise.
const selectWorkoutExercise = `
	SELECT we.id, we.workout_id, we.exercise_id, we.reps, we.sets, we.duration_seconds,
		e.id, e.name, e.category, e.equipment_needed
	FROM workout_exercises we
	JOIN exercises e ON e.id = we.exercise_id
`

// WorkoutExerciseStore implements the store.WorkoutExerciseStore interface on database/sql.
type WorkoutExerciseStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewWorkoutExerciseStore creates a new SQL implementation of the WorkoutExerciseStore interface.
// If logger is nil, a default logger will be used.
func NewWorkoutExerciseStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *WorkoutExerciseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WorkoutExerciseStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "workout_exercise_store")),
	}
}

// Ensure WorkoutExerciseStore implements store.WorkoutExerciseStore interface
var _ store.WorkoutExerciseStore = (*WorkoutExerciseStore)(nil)

// WithTx implements store.WorkoutExerciseStore.WithTx
func (s *WorkoutExerciseStore) WithTx(tx *sql.Tx) store.WorkoutExerciseStore {
	return &WorkoutExerciseStore{
		db:      tx,
		dialect: s.dialect,
		logger:  s.logger,
	}
}

// Create implements store.WorkoutExerciseStore.Create
func (s *WorkoutExerciseStore) Create(ctx context.Context, we *domain.WorkoutExercise) (err error) {
	defer observe(entityWorkoutExercise, "create", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.dialect.Rebind(`
		INSERT INTO workout_exercises (workout_id, exercise_id, reps, sets, duration_seconds)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)
	err = s.db.QueryRowContext(ctx, query,
		we.WorkoutID,
		we.ExerciseID,
		we.Reps,
		we.Sets,
		we.DurationSeconds,
	).Scan(&we.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			missing := s.missingParent(ctx, err, we)
			log.Debug("parent missing during workout exercise creation",
				slog.String("error", err.Error()),
				slog.Int64("workout_id", we.WorkoutID),
				slog.Int64("exercise_id", we.ExerciseID))
			return fmt.Errorf("%w: %v", missing, err)
		}
		log.Error("failed to create workout exercise",
			slog.String("error", err.Error()),
			slog.Int64("workout_id", we.WorkoutID),
			slog.Int64("exercise_id", we.ExerciseID))
		return store.NewStoreError(entityWorkoutExercise, "create", "insert failed", MapError(err))
	}

	log.Info("workout exercise created successfully",
		slog.Int64("workout_exercise_id", we.ID),
		slog.Int64("workout_id", we.WorkoutID),
		slog.Int64("exercise_id", we.ExerciseID))
	return nil
}

// missingParent decides which parent a foreign key violation refers to.
// PostgreSQL names the constraint; SQLite does not, so the parents are
// looked up in order, workout first.
func (s *WorkoutExerciseStore) missingParent(ctx context.Context, fkErr error, we *domain.WorkoutExercise) error {
	_, name := classify(fkErr)
	switch name {
	case constraintWorkoutFK:
		return store.ErrWorkoutNotFound
	case constraintExerciseFK:
		return store.ErrExerciseNotFound
	}

	if s.dialect == SQLite {
		if !s.exists(ctx, `SELECT 1 FROM workouts WHERE id = ?`, we.WorkoutID) {
			return store.ErrWorkoutNotFound
		}
		if !s.exists(ctx, `SELECT 1 FROM exercises WHERE id = ?`, we.ExerciseID) {
			return store.ErrExerciseNotFound
		}
	}
	return store.ErrInvalidEntity
}

func (s *WorkoutExerciseStore) exists(ctx context.Context, query string, id int64) bool {
	var one int
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(query), id).Scan(&one)
	return err == nil
}

// GetByID implements store.WorkoutExerciseStore.GetByID
func (s *WorkoutExerciseStore) GetByID(ctx context.Context, id int64) (_ *domain.WorkoutExercise, err error) {
	defer observe(entityWorkoutExercise, "get", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, s.dialect.Rebind(selectWorkoutExercise+` WHERE we.id = ?`), id)
	we, err := scanWorkoutExercise(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("workout exercise not found", slog.Int64("workout_exercise_id", id))
			return nil, store.ErrWorkoutExerciseNotFound
		}
		log.Error("failed to get workout exercise by ID",
			slog.String("error", err.Error()),
			slog.Int64("workout_exercise_id", id))
		return nil, store.NewStoreError(entityWorkoutExercise, "get", "query failed", err)
	}
	return we, nil
}

// ListByWorkout implements store.WorkoutExerciseStore.ListByWorkout
func (s *WorkoutExerciseStore) ListByWorkout(ctx context.Context, workoutID int64) (_ []domain.WorkoutExercise, err error) {
	defer observe(entityWorkoutExercise, "list_by_workout", time.Now(), &err)

	return s.list(ctx, "list_by_workout",
		s.dialect.Rebind(selectWorkoutExercise+` WHERE we.workout_id = ? ORDER BY we.id`), workoutID)
}

// ListAll implements store.WorkoutExerciseStore.ListAll
func (s *WorkoutExerciseStore) ListAll(ctx context.Context) (_ []domain.WorkoutExercise, err error) {
	defer observe(entityWorkoutExercise, "list_all", time.Now(), &err)

	return s.list(ctx, "list_all", selectWorkoutExercise+` ORDER BY we.workout_id, we.id`)
}

func (s *WorkoutExerciseStore) list(ctx context.Context, op, query string, args ...any) ([]domain.WorkoutExercise, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.NewStoreError(entityWorkoutExercise, op, "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.WorkoutExercise{}
	for rows.Next() {
		we, err := scanWorkoutExercise(rows)
		if err != nil {
			return nil, store.NewStoreError(entityWorkoutExercise, op, "scan failed", err)
		}
		items = append(items, *we)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(entityWorkoutExercise, op, "row iteration failed", err)
	}
	return items, nil
}

// Delete implements store.WorkoutExerciseStore.Delete
func (s *WorkoutExerciseStore) Delete(ctx context.Context, id int64) (err error) {
	defer observe(entityWorkoutExercise, "delete", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM workout_exercises WHERE id = ?`), id)
	if err != nil {
		log.Error("failed to delete workout exercise",
			slog.String("error", err.Error()),
			slog.Int64("workout_exercise_id", id))
		return store.NewStoreError(entityWorkoutExercise, "delete", "delete failed", err)
	}
	if err = CheckRowsAffected(result, store.ErrWorkoutExerciseNotFound); err != nil {
		return err
	}

	log.Info("workout exercise deleted successfully", slog.Int64("workout_exercise_id", id))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkoutExercise(row rowScanner) (*domain.WorkoutExercise, error) {
	var we domain.WorkoutExercise
	var e domain.Exercise
	err := row.Scan(
		&we.ID,
		&we.WorkoutID,
		&we.ExerciseID,
		&we.Reps,
		&we.Sets,
		&we.DurationSeconds,
		&e.ID,
		&e.Name,
		&e.Category,
		&e.EquipmentNeeded,
	)
	if err != nil {
		return nil, err
	}
	we.Exercise = &e
	return &we, nil
}
