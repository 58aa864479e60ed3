// Package seed replaces the contents of the store with a small demo data set
// of four exercises and two workouts.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/service"
)

type exerciseSeed struct {
	name      string
	category  string
	equipment bool
}

type entrySeed struct {
	exercise string
	sets     int
	reps     int
	duration int
}

type workoutSeed struct {
	minutes int
	notes   string
	entries []entrySeed
}

var exerciseSeeds = []exerciseSeed{
	{name: "Squat", category: "Strength", equipment: true},
	{name: "Bench Press", category: "Strength", equipment: true},
	{name: "Jumping Jacks", category: "Cardio", equipment: false},
	{name: "Plank", category: "Core", equipment: false},
}

var workoutSeeds = []workoutSeed{
	{
		minutes: 60,
		notes:   "Full body strength",
		entries: []entrySeed{
			{exercise: "Squat", sets: 5, reps: 5},
			{exercise: "Bench Press", sets: 5, reps: 5},
		},
	},
	{
		minutes: 30,
		notes:   "Quick conditioning",
		entries: []entrySeed{
			{exercise: "Jumping Jacks", duration: 120},
			{exercise: "Plank", duration: 60},
		},
	},
}

// Result counts what Run created.
type Result struct {
	Exercises        int
	Workouts         int
	WorkoutExercises int
}

// Run deletes every workout and exercise, then creates the demo data with
// all workouts dated on the given day.
func Run(
	ctx context.Context,
	exercises service.ExerciseService,
	workouts service.WorkoutService,
	date domain.Date,
	logger *slog.Logger,
) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "seed"))

	if err := clearAll(ctx, exercises, workouts); err != nil {
		return Result{}, err
	}
	logger.Info("existing data cleared")

	var res Result
	ids := make(map[string]int64, len(exerciseSeeds))
	for _, s := range exerciseSeeds {
		e, err := exercises.CreateExercise(ctx, domain.ExerciseInput{
			Name:            domain.StringOf(s.name),
			Category:        domain.StringOf(s.category),
			EquipmentNeeded: domain.BoolOf(s.equipment),
		})
		if err != nil {
			return res, fmt.Errorf("seed exercise %q: %w", s.name, err)
		}
		ids[s.name] = e.ID
		res.Exercises++
	}

	for _, s := range workoutSeeds {
		w, err := workouts.CreateWorkout(ctx, domain.WorkoutInput{
			Date:            domain.DateFieldOf(date),
			DurationMinutes: domain.IntOf(s.minutes),
			Notes:           domain.StringOf(s.notes),
		})
		if err != nil {
			return res, fmt.Errorf("seed workout %q: %w", s.notes, err)
		}
		res.Workouts++

		for _, entry := range s.entries {
			if _, err := workouts.AddExerciseToWorkout(ctx, w.ID, ids[entry.exercise], entry.input()); err != nil {
				return res, fmt.Errorf("seed %q in workout %q: %w", entry.exercise, s.notes, err)
			}
			res.WorkoutExercises++
		}
	}

	logger.Info("database seeded",
		slog.Int("exercises", res.Exercises),
		slog.Int("workouts", res.Workouts),
		slog.Int("workout_exercises", res.WorkoutExercises))
	return res, nil
}

func (e entrySeed) input() domain.WorkoutExerciseInput {
	var in domain.WorkoutExerciseInput
	if e.duration > 0 {
		in.DurationSeconds = domain.IntOf(e.duration)
	}
	if e.sets > 0 {
		in.Sets = domain.IntOf(e.sets)
		in.Reps = domain.IntOf(e.reps)
	}
	return in
}

// clearAll removes workouts first; their workout exercises go with them.
func clearAll(ctx context.Context, exercises service.ExerciseService, workouts service.WorkoutService) error {
	existingWorkouts, err := workouts.ListWorkouts(ctx)
	if err != nil {
		return fmt.Errorf("list workouts: %w", err)
	}
	for _, w := range existingWorkouts {
		if err := workouts.DeleteWorkout(ctx, w.ID); err != nil {
			return fmt.Errorf("delete workout %d: %w", w.ID, err)
		}
	}

	existingExercises, err := exercises.ListExercises(ctx)
	if err != nil {
		return fmt.Errorf("list exercises: %w", err)
	}
	for _, e := range existingExercises {
		if err := exercises.DeleteExercise(ctx, e.ID); err != nil {
			return fmt.Errorf("delete exercise %d: %w", e.ID, err)
		}
	}
	return nil
}
