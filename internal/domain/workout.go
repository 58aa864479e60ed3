package domain

// Field names for Workout validation.
const (
	fieldWorkoutDate     = "date"
	fieldDurationMinutes = "duration_minutes"
	fieldNotes           = "notes"
)

// Workout is a single training session on a given date.
type Workout struct {
	ID              int64   `json:"id"`
	Date            Date    `json:"date"`
	DurationMinutes int     `json:"duration_minutes"`
	Notes           *string `json:"notes"`

	// WorkoutExercises is populated on reads; it is never written through
	// the Workout.
	WorkoutExercises []WorkoutExercise `json:"workout_exercises"`
}

// WorkoutInput is the unvalidated payload used to create a Workout.
type WorkoutInput struct {
	Date            DateField `json:"date"`
	DurationMinutes Int       `json:"duration_minutes"`
	Notes           String    `json:"notes"`
}

// WorkoutSummary is the projection of a Workout shown on exercise details.
type WorkoutSummary struct {
	ID              int64 `json:"id"`
	Date            Date  `json:"date"`
	DurationMinutes int   `json:"duration_minutes"`
}

// NewWorkout validates the input and returns a Workout with no exercises.
func NewWorkout(in WorkoutInput) (*Workout, error) {
	date, err := requiredDate(in.Date, fieldWorkoutDate)
	if err != nil {
		return nil, err
	}
	duration, err := requiredPositiveInt(in.DurationMinutes, fieldDurationMinutes)
	if err != nil {
		return nil, err
	}
	notes, err := optionalText(in.Notes, fieldNotes)
	if err != nil {
		return nil, err
	}

	return &Workout{
		Date:             date,
		DurationMinutes:  duration,
		Notes:            notes,
		WorkoutExercises: []WorkoutExercise{},
	}, nil
}

// Summary returns the projection used on exercise details.
func (w *Workout) Summary() WorkoutSummary {
	return WorkoutSummary{
		ID:              w.ID,
		Date:            w.Date,
		DurationMinutes: w.DurationMinutes,
	}
}
