package domain

import "fmt"

// Field names and messages for WorkoutExercise validation.
const (
	fieldReps            = "reps"
	fieldSets            = "sets"
	fieldDurationSeconds = "duration_seconds"

	// FieldWorkoutExercise attributes errors of the cross-field rule, which
	// cannot be pinned on one of its three fields.
	FieldWorkoutExercise = "workout_exercise"

	msgRepsOrDuration = "Provide either duration_seconds OR both reps and sets."
)

// WorkoutExercise records one exercise performed within a workout, either
// time-based (DurationSeconds) or count-based (Sets x Reps).
type WorkoutExercise struct {
	ID              int64 `json:"id"`
	WorkoutID       int64 `json:"workout_id"`
	ExerciseID      int64 `json:"exercise_id"`
	Reps            *int  `json:"reps"`
	Sets            *int  `json:"sets"`
	DurationSeconds *int  `json:"duration_seconds"`

	// Exercise is populated on reads.
	Exercise *Exercise `json:"exercise,omitempty"`
}

// WorkoutExerciseInput is the unvalidated payload used to add an exercise
// to a workout. The parent IDs come from the request path, not the body.
type WorkoutExerciseInput struct {
	Reps            Int `json:"reps"`
	Sets            Int `json:"sets"`
	DurationSeconds Int `json:"duration_seconds"`

	// DecodeErr holds the error from parsing the request body. It is
	// reported by NewWorkoutExercise, after the parents have been found.
	DecodeErr error `json:"-"`
}

// NewWorkoutExercise validates the input against the field rules and the
// duration-or-sets-and-reps rule. The parent IDs are not checked here; the
// caller has already looked them up.
func NewWorkoutExercise(workoutID, exerciseID int64, in WorkoutExerciseInput) (*WorkoutExercise, error) {
	if in.DecodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, in.DecodeErr)
	}

	reps, err := optionalPositiveInt(in.Reps, fieldReps)
	if err != nil {
		return nil, err
	}
	sets, err := optionalPositiveInt(in.Sets, fieldSets)
	if err != nil {
		return nil, err
	}
	duration, err := optionalPositiveInt(in.DurationSeconds, fieldDurationSeconds)
	if err != nil {
		return nil, err
	}

	if err := checkRepsOrDuration(reps, sets, duration); err != nil {
		return nil, err
	}

	return &WorkoutExercise{
		WorkoutID:       workoutID,
		ExerciseID:      exerciseID,
		Reps:            reps,
		Sets:            sets,
		DurationSeconds: duration,
	}, nil
}

// checkRepsOrDuration enforces that an entry is either time-based or a
// complete sets-and-reps count.
func checkRepsOrDuration(reps, sets, duration *int) error {
	if duration == nil && (reps == nil || sets == nil) {
		return NewValidationError(FieldWorkoutExercise, msgRepsOrDuration, nil)
	}
	return nil
}
