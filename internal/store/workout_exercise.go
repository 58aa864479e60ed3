package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/workout-api/internal/domain"
)

// WorkoutExerciseStore defines the interface for the join between workouts
// and exercises. Reads always populate the nested Exercise.
type WorkoutExerciseStore interface {
	// Create saves a new workout exercise and sets its ID.
	// Returns ErrWorkoutNotFound or ErrExerciseNotFound when a parent row
	// is missing at insert time.
	Create(ctx context.Context, we *domain.WorkoutExercise) error

	// GetByID retrieves a workout exercise by its ID.
	// Returns ErrWorkoutExerciseNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.WorkoutExercise, error)

	// ListByWorkout returns the workout exercises of one workout ordered by ID.
	ListByWorkout(ctx context.Context, workoutID int64) ([]domain.WorkoutExercise, error)

	// ListAll returns every workout exercise ordered by workout ID, then ID.
	ListAll(ctx context.Context) ([]domain.WorkoutExercise, error)

	// Delete removes a single workout exercise.
	// Returns ErrWorkoutExerciseNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new WorkoutExerciseStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) WorkoutExerciseStore
}
