package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workout-api/internal/api"
)

const squatBody = `{"name": "Squat", "category": "Strength", "equipment_needed": true}`

func addPath(workoutID, exerciseID any) string {
	return fmt.Sprintf("/workouts/%v/exercises/%v/workout_exercises", workoutID, exerciseID)
}

func TestWorkoutRoundTrip(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/workouts",
		`{"date": "2024-01-01", "duration_minutes": 45, "notes": "leg day"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[api.WorkoutResponse](t, rec)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/workouts/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{
		"id": %d,
		"date": "2024-01-01",
		"duration_minutes": 45,
		"notes": "leg day",
		"workout_exercises": []
	}`, created.ID), rec.Body.String())
}

func TestCreateWorkout_NotesOptional(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/workouts", `{"date": "2024-02-29", "duration_minutes": 30}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decode[map[string]any](t, rec)
	assert.Nil(t, got["notes"])
	assert.Equal(t, "2024-02-29", got["date"])
}

func TestCreateWorkout_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{
			name:     "missing date",
			body:     `{"duration_minutes": 30}`,
			wantBody: `{"error": "date is required."}`,
		},
		{
			name:     "invalid date",
			body:     `{"date": "2024-13-40", "duration_minutes": 30}`,
			wantBody: `{"error": "date must be a valid ISO-8601 date (YYYY-MM-DD)."}`,
		},
		{
			name:     "missing duration",
			body:     `{"date": "2024-01-01"}`,
			wantBody: `{"error": "duration_minutes is required."}`,
		},
		{
			name:     "zero duration",
			body:     `{"date": "2024-01-01", "duration_minutes": 0}`,
			wantBody: `{"error": "duration_minutes must be >= 1"}`,
		},
		{
			name:     "negative duration",
			body:     `{"date": "2024-01-01", "duration_minutes": -10}`,
			wantBody: `{"error": "duration_minutes must be >= 1"}`,
		},
		{
			name:     "fractional duration",
			body:     `{"date": "2024-01-01", "duration_minutes": 3.5}`,
			wantBody: `{"error": "duration_minutes must be a valid integer."}`,
		},
		{
			name:     "malformed json",
			body:     `{"date": `,
			wantBody: `{"error": "Invalid request format"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := newTestRouter(t)

			rec := do(t, h, http.MethodPost, "/workouts", tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestEndToEnd_AddExerciseToWorkout(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	exerciseID := mustCreate(t, h, "/exercises", squatBody)
	workoutID := mustCreate(t, h, "/workouts", `{"date": "2024-01-01", "duration_minutes": 60}`)

	rec := do(t, h, http.MethodPost, addPath(workoutID, exerciseID), `{"sets": 5, "reps": 5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	added := decode[api.AddExerciseResponse](t, rec)
	assert.Equal(t, "Exercise added to workout", added.Message)
	assert.Positive(t, added.WorkoutExerciseID)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/workouts/%d", workoutID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	workout := decode[api.WorkoutResponse](t, rec)
	require.Len(t, workout.WorkoutExercises, 1)

	we := workout.WorkoutExercises[0]
	assert.Equal(t, added.WorkoutExerciseID, we.ID)
	require.NotNil(t, we.Sets)
	require.NotNil(t, we.Reps)
	assert.Equal(t, 5, *we.Sets)
	assert.Equal(t, 5, *we.Reps)
	assert.Nil(t, we.DurationSeconds)
	require.NotNil(t, we.Exercise)
	assert.Equal(t, api.ExerciseResponse{
		ID: exerciseID, Name: "Squat", Category: "Strength", EquipmentNeeded: true,
	}, *we.Exercise)

	raw := decode[map[string]any](t, rec)
	nested := raw["workout_exercises"].([]any)[0].(map[string]any)
	assert.NotContains(t, nested, "workout_id")
	assert.NotContains(t, nested["exercise"].(map[string]any), "workouts")
}

func TestAddExerciseToWorkout_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{
			name:     "nothing provided",
			body:     `{}`,
			wantBody: `{"error": "Provide either duration_seconds OR both reps and sets."}`,
		},
		{
			name:     "reps without sets",
			body:     `{"reps": 10}`,
			wantBody: `{"error": "Provide either duration_seconds OR both reps and sets."}`,
		},
		{
			name:     "sets without reps",
			body:     `{"sets": 3, "reps": null}`,
			wantBody: `{"error": "Provide either duration_seconds OR both reps and sets."}`,
		},
		{
			name:     "zero reps",
			body:     `{"reps": 0, "sets": 3}`,
			wantBody: `{"error": "reps must be >= 1"}`,
		},
		{
			name:     "negative duration",
			body:     `{"duration_seconds": -5}`,
			wantBody: `{"error": "duration_seconds must be >= 1"}`,
		},
		{
			name:     "sets as string",
			body:     `{"sets": "3", "reps": 5}`,
			wantBody: `{"error": "sets must be a valid integer."}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := newTestRouter(t)
			exerciseID := mustCreate(t, h, "/exercises", squatBody)
			workoutID := mustCreate(t, h, "/workouts", `{"date": "2024-01-01", "duration_minutes": 60}`)

			rec := do(t, h, http.MethodPost, addPath(workoutID, exerciseID), tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())

			workout := decode[api.WorkoutResponse](t, do(t, h, http.MethodGet, fmt.Sprintf("/workouts/%d", workoutID), ""))
			assert.Empty(t, workout.WorkoutExercises)
		})
	}
}

func TestAddExerciseToWorkout_MissingParentsComeFirst(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	exerciseID := mustCreate(t, h, "/exercises", squatBody)
	workoutID := mustCreate(t, h, "/workouts", `{"date": "2024-01-01", "duration_minutes": 60}`)

	tests := []struct {
		name     string
		path     string
		body     string
		wantBody string
	}{
		{
			name:     "missing workout with invalid payload",
			path:     addPath(999, exerciseID),
			body:     `{"reps": 0}`,
			wantBody: `{"error": "Workout not found"}`,
		},
		{
			name:     "missing workout with unparseable body",
			path:     addPath(999, exerciseID),
			body:     `{not json`,
			wantBody: `{"error": "Workout not found"}`,
		},
		{
			name:     "missing workout with array body",
			path:     addPath(999, exerciseID),
			body:     `[1,2]`,
			wantBody: `{"error": "Workout not found"}`,
		},
		{
			name:     "missing exercise with unparseable body",
			path:     addPath(workoutID, 999),
			body:     `{not json`,
			wantBody: `{"error": "Exercise not found"}`,
		},
		{
			name:     "missing workout and exercise",
			path:     addPath(999, 999),
			body:     `{"sets": 5, "reps": 5}`,
			wantBody: `{"error": "Workout not found"}`,
		},
		{
			name:     "missing exercise with invalid payload",
			path:     addPath(workoutID, 999),
			body:     `{}`,
			wantBody: `{"error": "Exercise not found"}`,
		},
		{
			name:     "non numeric workout id",
			path:     addPath("abc", exerciseID),
			body:     `{"duration_seconds": 30}`,
			wantBody: `{"error": "Workout not found"}`,
		},
		{
			name:     "non numeric exercise id",
			path:     addPath(workoutID, "abc"),
			body:     `{"duration_seconds": 30}`,
			wantBody: `{"error": "Exercise not found"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestAddExerciseToWorkout_UnparseableBodyAfterLookups(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	exerciseID := mustCreate(t, h, "/exercises", squatBody)
	workoutID := mustCreate(t, h, "/workouts", `{"date": "2024-01-01", "duration_minutes": 60}`)

	for _, body := range []string{`{not json`, `[1,2]`, `{"sets": 5} trailing`} {
		rec := do(t, h, http.MethodPost, addPath(workoutID, exerciseID), body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"error": "Invalid request format"}`, rec.Body.String(), body)
	}

	workout := decode[api.WorkoutResponse](t, do(t, h, http.MethodGet, fmt.Sprintf("/workouts/%d", workoutID), ""))
	assert.Empty(t, workout.WorkoutExercises)
}

func TestListWorkouts(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/workouts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	exerciseID := mustCreate(t, h, "/exercises", squatBody)
	first := mustCreate(t, h, "/workouts", `{"date": "2024-01-01", "duration_minutes": 60}`)
	second := mustCreate(t, h, "/workouts", `{"date": "2024-01-02", "duration_minutes": 30}`)
	rec = do(t, h, http.MethodPost, addPath(second, exerciseID), `{"duration_seconds": 120}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	workouts := decode[[]api.WorkoutResponse](t, do(t, h, http.MethodGet, "/workouts", ""))
	require.Len(t, workouts, 2)
	assert.Equal(t, first, workouts[0].ID)
	assert.Empty(t, workouts[0].WorkoutExercises)
	assert.Equal(t, second, workouts[1].ID)
	require.Len(t, workouts[1].WorkoutExercises, 1)
	assert.Equal(t, 120, *workouts[1].WorkoutExercises[0].DurationSeconds)
}

func TestDeleteWorkout(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	exerciseID := mustCreate(t, h, "/exercises", squatBody)
	workoutID := mustCreate(t, h, "/workouts", `{"date": "2024-01-01", "duration_minutes": 60}`)
	rec := do(t, h, http.MethodPost, addPath(workoutID, exerciseID), `{"sets": 3, "reps": 8}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	weID := decode[api.AddExerciseResponse](t, rec).WorkoutExerciseID

	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/workouts/%d", workoutID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/workouts/%d", workoutID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Workout not found"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/workout_exercises/%d", weID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/exercises/%d", exerciseID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[api.ExerciseDetailResponse](t, rec).Workouts)

	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/workouts/%d", workoutID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkoutExerciseRoutes(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t)

	exerciseID := mustCreate(t, h, "/exercises", squatBody)
	workoutID := mustCreate(t, h, "/workouts", `{"date": "2024-01-01", "duration_minutes": 60}`)
	rec := do(t, h, http.MethodPost, addPath(workoutID, exerciseID), `{"duration_seconds": 45}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	weID := decode[api.AddExerciseResponse](t, rec).WorkoutExerciseID

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/workout_exercises/%d", weID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{
		"id": %d,
		"reps": null,
		"sets": null,
		"duration_seconds": 45,
		"exercise": {"id": %d, "name": "Squat", "category": "Strength", "equipment_needed": true}
	}`, weID, exerciseID), rec.Body.String())

	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/workout_exercises/%d", weID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/workout_exercises/%d", weID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "WorkoutExercise not found"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/workouts/%d", workoutID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[api.WorkoutResponse](t, rec).WorkoutExercises)
}
