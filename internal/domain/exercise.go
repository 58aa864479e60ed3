package domain

// Field names and messages for Exercise validation.
const (
	fieldExerciseName     = "name"
	fieldExerciseCategory = "category"
	fieldEquipmentNeeded  = "equipment_needed"

	msgNameRequired     = "Exercise name is required."
	msgNameTooShort     = "Exercise name must be at least 2 characters."
	msgCategoryRequired = "Category is required."
	msgCategoryTooShort = "Category must be at least 2 characters."
)

// Exercise is a named movement that can be logged in any number of workouts.
// Names are unique across the store.
type Exercise struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	EquipmentNeeded bool   `json:"equipment_needed"`
}

// ExerciseInput is the unvalidated payload used to create an Exercise.
type ExerciseInput struct {
	Name            String `json:"name"`
	Category        String `json:"category"`
	EquipmentNeeded Bool   `json:"equipment_needed"`
}

// ExerciseDetail is an Exercise together with a summary of every workout
// it appears in. The summaries are derived from the join table.
type ExerciseDetail struct {
	Exercise
	Workouts []WorkoutSummary `json:"workouts"`
}

// NewExercise validates the input and returns an Exercise with trimmed
// name and category. The ID is assigned by the store.
func NewExercise(in ExerciseInput) (*Exercise, error) {
	name, err := requiredText(in.Name, fieldExerciseName, msgNameRequired, msgNameTooShort)
	if err != nil {
		return nil, err
	}
	category, err := requiredText(in.Category, fieldExerciseCategory, msgCategoryRequired, msgCategoryTooShort)
	if err != nil {
		return nil, err
	}
	equipment, err := requiredBool(in.EquipmentNeeded, fieldEquipmentNeeded)
	if err != nil {
		return nil, err
	}

	return &Exercise{
		Name:            name,
		Category:        category,
		EquipmentNeeded: equipment,
	}, nil
}
