package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/sqlstore"
	"github.com/phrazzld/workout-api/internal/service"
	"github.com/phrazzld/workout-api/internal/store"
	"github.com/phrazzld/workout-api/internal/testdb"
)

type fixture struct {
	db               *sql.DB
	exerciseStore    store.ExerciseStore
	workoutStore     store.WorkoutStore
	workoutExercises store.WorkoutExerciseStore
	exercises        service.ExerciseService
	workouts         service.WorkoutService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testdb.New(t)
	f := &fixture{
		db:               db,
		exerciseStore:    sqlstore.NewExerciseStore(db, testdb.Dialect, nil),
		workoutStore:     sqlstore.NewWorkoutStore(db, testdb.Dialect, nil),
		workoutExercises: sqlstore.NewWorkoutExerciseStore(db, testdb.Dialect, nil),
	}
	f.build(t)
	return f
}

// build wires the services from the fixture's current stores.
func (f *fixture) build(t *testing.T) {
	t.Helper()

	var err error
	f.exercises, err = service.NewExerciseService(f.db, f.exerciseStore, nil)
	require.NoError(t, err)
	f.workouts, err = service.NewWorkoutService(f.db, f.workoutStore, f.exerciseStore, f.workoutExercises, nil)
	require.NoError(t, err)
}

func exerciseInput(name, category string, equipment bool) domain.ExerciseInput {
	return domain.ExerciseInput{
		Name:            domain.StringOf(name),
		Category:        domain.StringOf(category),
		EquipmentNeeded: domain.BoolOf(equipment),
	}
}

func workoutInput(date string, minutes int) domain.WorkoutInput {
	d, err := domain.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return domain.WorkoutInput{
		Date:            domain.DateFieldOf(d),
		DurationMinutes: domain.IntOf(minutes),
	}
}

func (f *fixture) mustExercise(t *testing.T, name string) *domain.Exercise {
	t.Helper()
	e, err := f.exercises.CreateExercise(context.Background(), exerciseInput(name, "Strength", true))
	require.NoError(t, err)
	return e
}

func (f *fixture) mustWorkout(t *testing.T, date string, minutes int) *domain.Workout {
	t.Helper()
	w, err := f.workouts.CreateWorkout(context.Background(), workoutInput(date, minutes))
	require.NoError(t, err)
	return w
}

func setsAndReps(sets, reps int) domain.WorkoutExerciseInput {
	return domain.WorkoutExerciseInput{Sets: domain.IntOf(sets), Reps: domain.IntOf(reps)}
}

func timed(seconds int) domain.WorkoutExerciseInput {
	return domain.WorkoutExerciseInput{DurationSeconds: domain.IntOf(seconds)}
}
