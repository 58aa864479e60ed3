package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/workout-api/internal/domain"
)

// WorkoutStore defines the interface for workout data persistence.
// Nested workout exercises are loaded through WorkoutExerciseStore.
type WorkoutStore interface {
	// Create saves a new workout and sets its ID.
	Create(ctx context.Context, workout *domain.Workout) error

	// GetByID retrieves a workout by its ID, without nested exercises.
	// Returns ErrWorkoutNotFound if the workout does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)

	// List returns all workouts ordered by ID, without nested exercises.
	List(ctx context.Context) ([]domain.Workout, error)

	// Delete removes a workout and every workout exercise it owns.
	// Returns ErrWorkoutNotFound if the workout does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new WorkoutStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) WorkoutStore
}
