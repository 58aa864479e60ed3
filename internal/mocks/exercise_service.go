package mocks

import (
	"context"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/service"
)

// MockExerciseService implements service.ExerciseService for testing
type MockExerciseService struct {
	ListExercisesFn  func(ctx context.Context) ([]domain.Exercise, error)
	GetExerciseFn    func(ctx context.Context, id int64) (*domain.ExerciseDetail, error)
	CreateExerciseFn func(ctx context.Context, in domain.ExerciseInput) (*domain.Exercise, error)
	DeleteExerciseFn func(ctx context.Context, id int64) error

	// Default return values
	Exercises    []domain.Exercise
	Exercise     *domain.Exercise
	Detail       *domain.ExerciseDetail
	DefaultError error
}

var _ service.ExerciseService = (*MockExerciseService)(nil)

// ListExercises implements the ExerciseService.ListExercises method
func (m *MockExerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	if m.ListExercisesFn != nil {
		return m.ListExercisesFn(ctx)
	}
	return m.Exercises, m.DefaultError
}

// GetExercise implements the ExerciseService.GetExercise method
func (m *MockExerciseService) GetExercise(ctx context.Context, id int64) (*domain.ExerciseDetail, error) {
	if m.GetExerciseFn != nil {
		return m.GetExerciseFn(ctx, id)
	}
	return m.Detail, m.DefaultError
}

// CreateExercise implements the ExerciseService.CreateExercise method
func (m *MockExerciseService) CreateExercise(ctx context.Context, in domain.ExerciseInput) (*domain.Exercise, error) {
	if m.CreateExerciseFn != nil {
		return m.CreateExerciseFn(ctx, in)
	}
	return m.Exercise, m.DefaultError
}

// DeleteExercise implements the ExerciseService.DeleteExercise method
func (m *MockExerciseService) DeleteExercise(ctx context.Context, id int64) error {
	if m.DeleteExerciseFn != nil {
		return m.DeleteExerciseFn(ctx, id)
	}
	return m.DefaultError
}
