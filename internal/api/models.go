package api

import (
	"github.com/phrazzld/workout-api/internal/domain"
)

// ExerciseResponse is the representation of an Exercise.
type ExerciseResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	EquipmentNeeded bool   `json:"equipment_needed"`
}

// ExerciseDetailResponse adds the workouts an exercise appears in.
type ExerciseDetailResponse struct {
	ExerciseResponse
	Workouts []WorkoutSummaryResponse `json:"workouts"`
}

// WorkoutSummaryResponse is the short workout form nested in exercise details.
type WorkoutSummaryResponse struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"duration_minutes"`
}

// WorkoutExerciseResponse is a workout exercise with its exercise. The
// parent IDs are implied by where it is nested and are not repeated.
type WorkoutExerciseResponse struct {
	ID              int64             `json:"id"`
	Reps            *int              `json:"reps"`
	Sets            *int              `json:"sets"`
	DurationSeconds *int              `json:"duration_seconds"`
	Exercise        *ExerciseResponse `json:"exercise"`
}

// WorkoutResponse is the representation of a Workout.
type WorkoutResponse struct {
	ID               int64                     `json:"id"`
	Date             string                    `json:"date"`
	DurationMinutes  int                       `json:"duration_minutes"`
	Notes            *string                   `json:"notes"`
	WorkoutExercises []WorkoutExerciseResponse `json:"workout_exercises"`
}

// AddExerciseResponse acknowledges a workout exercise created through
// POST /workouts/{workoutId}/exercises/{exerciseId}/workout_exercises.
type AddExerciseResponse struct {
	Message           string `json:"message"`
	WorkoutExerciseID int64  `json:"workout_exercise_id"`
}

func exerciseToResponse(e *domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:              e.ID,
		Name:            e.Name,
		Category:        e.Category,
		EquipmentNeeded: e.EquipmentNeeded,
	}
}

func exercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	out := make([]ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		out = append(out, exerciseToResponse(&exercises[i]))
	}
	return out
}

func exerciseDetailToResponse(d *domain.ExerciseDetail) ExerciseDetailResponse {
	workouts := make([]WorkoutSummaryResponse, 0, len(d.Workouts))
	for _, w := range d.Workouts {
		workouts = append(workouts, WorkoutSummaryResponse{
			ID:              w.ID,
			Date:            w.Date.String(),
			DurationMinutes: w.DurationMinutes,
		})
	}
	return ExerciseDetailResponse{
		ExerciseResponse: exerciseToResponse(&d.Exercise),
		Workouts:         workouts,
	}
}

func workoutExerciseToResponse(we *domain.WorkoutExercise) WorkoutExerciseResponse {
	resp := WorkoutExerciseResponse{
		ID:              we.ID,
		Reps:            we.Reps,
		Sets:            we.Sets,
		DurationSeconds: we.DurationSeconds,
	}
	if we.Exercise != nil {
		ex := exerciseToResponse(we.Exercise)
		resp.Exercise = &ex
	}
	return resp
}

func workoutToResponse(w *domain.Workout) WorkoutResponse {
	wes := make([]WorkoutExerciseResponse, 0, len(w.WorkoutExercises))
	for i := range w.WorkoutExercises {
		wes = append(wes, workoutExerciseToResponse(&w.WorkoutExercises[i]))
	}
	return WorkoutResponse{
		ID:               w.ID,
		Date:             w.Date.String(),
		DurationMinutes:  w.DurationMinutes,
		Notes:            w.Notes,
		WorkoutExercises: wes,
	}
}

func workoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	out := make([]WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		out = append(out, workoutToResponse(&workouts[i]))
	}
	return out
}
