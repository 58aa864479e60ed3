package mocks

import (
	"context"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/service"
)

// MockWorkoutService implements service.WorkoutService for testing
type MockWorkoutService struct {
	ListWorkoutsFn          func(ctx context.Context) ([]domain.Workout, error)
	GetWorkoutFn            func(ctx context.Context, id int64) (*domain.Workout, error)
	CreateWorkoutFn         func(ctx context.Context, in domain.WorkoutInput) (*domain.Workout, error)
	DeleteWorkoutFn         func(ctx context.Context, id int64) error
	AddExerciseToWorkoutFn  func(ctx context.Context, workoutID, exerciseID int64, in domain.WorkoutExerciseInput) (*domain.WorkoutExercise, error)
	GetWorkoutExerciseFn    func(ctx context.Context, id int64) (*domain.WorkoutExercise, error)
	DeleteWorkoutExerciseFn func(ctx context.Context, id int64) error

	// Default return values
	Workouts        []domain.Workout
	Workout         *domain.Workout
	WorkoutExercise *domain.WorkoutExercise
	DefaultError    error

	// Calls counts every method invocation, by method name.
	Calls map[string]int
}

var _ service.WorkoutService = (*MockWorkoutService)(nil)

func (m *MockWorkoutService) record(method string) {
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[method]++
}

// ListWorkouts implements the WorkoutService.ListWorkouts method
func (m *MockWorkoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	m.record("ListWorkouts")
	if m.ListWorkoutsFn != nil {
		return m.ListWorkoutsFn(ctx)
	}
	return m.Workouts, m.DefaultError
}

// GetWorkout implements the WorkoutService.GetWorkout method
func (m *MockWorkoutService) GetWorkout(ctx context.Context, id int64) (*domain.Workout, error) {
	m.record("GetWorkout")
	if m.GetWorkoutFn != nil {
		return m.GetWorkoutFn(ctx, id)
	}
	return m.Workout, m.DefaultError
}

// CreateWorkout implements the WorkoutService.CreateWorkout method
func (m *MockWorkoutService) CreateWorkout(ctx context.Context, in domain.WorkoutInput) (*domain.Workout, error) {
	m.record("CreateWorkout")
	if m.CreateWorkoutFn != nil {
		return m.CreateWorkoutFn(ctx, in)
	}
	return m.Workout, m.DefaultError
}

// DeleteWorkout implements the WorkoutService.DeleteWorkout method
func (m *MockWorkoutService) DeleteWorkout(ctx context.Context, id int64) error {
	m.record("DeleteWorkout")
	if m.DeleteWorkoutFn != nil {
		return m.DeleteWorkoutFn(ctx, id)
	}
	return m.DefaultError
}

// AddExerciseToWorkout implements the WorkoutService.AddExerciseToWorkout method
func (m *MockWorkoutService) AddExerciseToWorkout(
	ctx context.Context,
	workoutID, exerciseID int64,
	in domain.WorkoutExerciseInput,
) (*domain.WorkoutExercise, error) {
	m.record("AddExerciseToWorkout")
	if m.AddExerciseToWorkoutFn != nil {
		return m.AddExerciseToWorkoutFn(ctx, workoutID, exerciseID, in)
	}
	return m.WorkoutExercise, m.DefaultError
}

// GetWorkoutExercise implements the WorkoutService.GetWorkoutExercise method
func (m *MockWorkoutService) GetWorkoutExercise(ctx context.Context, id int64) (*domain.WorkoutExercise, error) {
	m.record("GetWorkoutExercise")
	if m.GetWorkoutExerciseFn != nil {
		return m.GetWorkoutExerciseFn(ctx, id)
	}
	return m.WorkoutExercise, m.DefaultError
}

// DeleteWorkoutExercise implements the WorkoutService.DeleteWorkoutExercise method
func (m *MockWorkoutService) DeleteWorkoutExercise(ctx context.Context, id int64) error {
	m.record("DeleteWorkoutExercise")
	if m.DeleteWorkoutExerciseFn != nil {
		return m.DeleteWorkoutExerciseFn(ctx, id)
	}
	return m.DefaultError
}
