package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkoutExercise_RepsOrDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "sets and reps", body: `{"sets": 5, "reps": 5}`},
		{name: "duration only", body: `{"duration_seconds": 60}`},
		{name: "duration with reps", body: `{"duration_seconds": 60, "reps": 10}`},
		{name: "all three", body: `{"duration_seconds": 60, "reps": 10, "sets": 3}`},
		{name: "explicit nulls beside duration", body: `{"duration_seconds": 90, "reps": null, "sets": null}`},
		{name: "nothing", body: `{}`, wantErr: true},
		{name: "all null", body: `{"reps": null, "sets": null, "duration_seconds": null}`, wantErr: true},
		{name: "reps only", body: `{"reps": 10}`, wantErr: true},
		{name: "sets only", body: `{"sets": 3}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var in WorkoutExerciseInput
			require.NoError(t, json.Unmarshal([]byte(tc.body), &in))

			we, err := NewWorkoutExercise(1, 2, in)
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, int64(1), we.WorkoutID)
				assert.Equal(t, int64(2), we.ExerciseID)
				return
			}

			vErr, ok := AsValidationError(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, FieldWorkoutExercise, vErr.Field)
			assert.Equal(t, "Provide either duration_seconds OR both reps and sets.", vErr.Message)
		})
	}
}

func TestNewWorkoutExercise_FieldRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{"zero reps", `{"reps": 0, "sets": 3}`, "reps", "reps must be >= 1"},
		{"negative sets", `{"reps": 5, "sets": -1}`, "sets", "sets must be >= 1"},
		{"zero duration", `{"duration_seconds": 0}`, "duration_seconds", "duration_seconds must be >= 1"},
		{"fractional reps", `{"reps": 2.5, "sets": 3}`, "reps", "reps must be a valid integer."},
		{"string duration", `{"duration_seconds": "60"}`, "duration_seconds", "duration_seconds must be a valid integer."},
		{"bool sets", `{"reps": 5, "sets": true}`, "sets", "sets must be a valid integer."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var in WorkoutExerciseInput
			require.NoError(t, json.Unmarshal([]byte(tc.body), &in))

			_, err := NewWorkoutExercise(1, 1, in)
			vErr, ok := AsValidationError(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, tc.wantField, vErr.Field)
			assert.Equal(t, tc.wantMsg, vErr.Message)
		})
	}
}

func TestNewWorkoutExercise_DecodeError(t *testing.T) {
	t.Parallel()

	in := WorkoutExerciseInput{DecodeErr: errors.New("invalid character 'n'")}
	_, err := NewWorkoutExercise(1, 1, in)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.NotErrorIs(t, err, ErrValidation)
}
