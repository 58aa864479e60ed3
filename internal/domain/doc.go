// Package domain contains the core business entities, value objects, and
// validation rules of the workout log. It represents the heart of the system,
// independent of any specific storage engine or delivery mechanism.
//
// Entities are built from loosely typed inputs (ExerciseInput, WorkoutInput,
// WorkoutExerciseInput) through constructors that apply the field rules
// (presence, type, trimmed minimum length, positive range) followed by the
// cross-field rules. Storage constraints mirror these rules but are only the
// last line of defense.
package domain
