package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/service"
	"github.com/phrazzld/workout-api/internal/store"
)

func TestNewExerciseService_RequiresDependencies(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := service.NewExerciseService(nil, f.exerciseStore, nil)
	assert.Error(t, err)
	_, err = service.NewExerciseService(f.db, nil, nil)
	assert.Error(t, err)
}

func TestCreateExercise_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        domain.ExerciseInput
		wantName  string
		wantCat   string
		equipment bool
	}{
		{"plain", exerciseInput("Squat", "Strength", true), "Squat", "Strength", true},
		{"trimmed", exerciseInput("  Bench Press ", " Upper body ", false), "Bench Press", "Upper body", false},
		{"two characters", exerciseInput("Go", "Ab", true), "Go", "Ab", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			ctx := context.Background()

			created, err := f.exercises.CreateExercise(ctx, tc.in)
			require.NoError(t, err)
			assert.Positive(t, created.ID)

			got, err := f.exercises.GetExercise(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, *created, got.Exercise)
			assert.Equal(t, tc.wantName, got.Name)
			assert.Equal(t, tc.wantCat, got.Category)
			assert.Equal(t, tc.equipment, got.EquipmentNeeded)
			assert.Empty(t, got.Workouts)
		})
	}
}

func TestCreateExercise_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      domain.ExerciseInput
		field   string
		message string
	}{
		{"missing name", domain.ExerciseInput{Category: domain.StringOf("Legs"), EquipmentNeeded: domain.BoolOf(true)},
			"name", "Exercise name is required."},
		{"short name", exerciseInput(" A ", "Legs", true), "name", "Exercise name must be at least 2 characters."},
		{"short category", exerciseInput("Squat", "L", true), "category", "Category must be at least 2 characters."},
		{"missing equipment", domain.ExerciseInput{Name: domain.StringOf("Squat"), Category: domain.StringOf("Legs")},
			"equipment_needed", "equipment_needed is required."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			_, err := f.exercises.CreateExercise(context.Background(), tc.in)
			ve, ok := domain.AsValidationError(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, tc.message, ve.Message)

			list, err := f.exercises.ListExercises(context.Background())
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestCreateExercise_DuplicateName(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.mustExercise(t, "Squat")

	_, err := f.exercises.CreateExercise(ctx, exerciseInput("  Squat  ", "Legs", false))
	assert.ErrorIs(t, err, store.ErrExerciseNameExists)

	list, err := f.exercises.ListExercises(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateExercise_ConcurrentDuplicates(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.exercises.CreateExercise(ctx, exerciseInput("Deadlift", "Strength", true))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, store.ErrExerciseNameExists)
	}
	assert.Equal(t, 1, succeeded)
}

func TestGetExercise_NotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.exercises.GetExercise(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrExerciseNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestGetExercise_ListsDistinctWorkouts(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	squat := f.mustExercise(t, "Squat")
	w1 := f.mustWorkout(t, "2024-01-01", 60)
	w2 := f.mustWorkout(t, "2024-01-03", 30)
	f.mustWorkout(t, "2024-01-05", 20)

	for _, wid := range []int64{w1.ID, w1.ID, w2.ID} {
		_, err := f.workouts.AddExerciseToWorkout(ctx, wid, squat.ID, setsAndReps(5, 5))
		require.NoError(t, err)
	}

	detail, err := f.exercises.GetExercise(ctx, squat.ID)
	require.NoError(t, err)
	require.Len(t, detail.Workouts, 2)
	assert.Equal(t, domain.WorkoutSummary{ID: w1.ID, Date: w1.Date, DurationMinutes: 60}, detail.Workouts[0])
	assert.Equal(t, w2.ID, detail.Workouts[1].ID)
}

func TestDeleteExercise(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	squat := f.mustExercise(t, "Squat")
	bench := f.mustExercise(t, "Bench Press")
	w := f.mustWorkout(t, "2024-01-01", 60)
	_, err := f.workouts.AddExerciseToWorkout(ctx, w.ID, squat.ID, setsAndReps(5, 5))
	require.NoError(t, err)
	_, err = f.workouts.AddExerciseToWorkout(ctx, w.ID, bench.ID, setsAndReps(3, 8))
	require.NoError(t, err)

	require.NoError(t, f.exercises.DeleteExercise(ctx, squat.ID))

	_, err = f.exercises.GetExercise(ctx, squat.ID)
	assert.ErrorIs(t, err, store.ErrExerciseNotFound)

	got, err := f.workouts.GetWorkout(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, got.WorkoutExercises, 1)
	assert.Equal(t, bench.ID, got.WorkoutExercises[0].Exercise.ID)

	assert.ErrorIs(t, f.exercises.DeleteExercise(ctx, squat.ID), store.ErrExerciseNotFound)
}

func TestListExercises_OrderedByID(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	empty, err := f.exercises.ListExercises(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a := f.mustExercise(t, "Squat")
	b := f.mustExercise(t, "Plank")

	list, err := f.exercises.ListExercises(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []int64{a.ID, b.ID}, []int64{list[0].ID, list[1].ID})
}
