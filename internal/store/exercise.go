package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/workout-api/internal/domain"
)

// ExerciseStore defines the interface for exercise data persistence.
type ExerciseStore interface {
	// Create saves a new exercise and sets its ID.
	// Returns validation errors from the domain Exercise if data is invalid.
	// Returns ErrExerciseNameExists if the name is already taken.
	Create(ctx context.Context, exercise *domain.Exercise) error

	// GetByID retrieves an exercise by its ID.
	// Returns ErrExerciseNotFound if the exercise does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)

	// List returns all exercises ordered by ID.
	List(ctx context.Context) ([]domain.Exercise, error)

	// ListWorkouts returns a summary of each distinct workout the exercise
	// appears in, ordered by workout ID.
	ListWorkouts(ctx context.Context, exerciseID int64) ([]domain.WorkoutSummary, error)

	// Delete removes an exercise and every workout exercise referencing it.
	// Returns ErrExerciseNotFound if the exercise does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new ExerciseStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ExerciseStore
}
