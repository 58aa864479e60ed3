package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/workout-api/internal/api/shared"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/store"
)

// Client-facing messages.
const (
	msgWorkoutNotFound         = "Workout not found"
	msgExerciseNotFound        = "Exercise not found"
	msgWorkoutExerciseNotFound = "WorkoutExercise not found"
	msgExerciseNameNotUnique   = "Exercise name must be unique."
	msgInvalidRequestFormat    = "Invalid request format"
	msgInvalidEntity           = "Invalid entity data"
	msgUnexpected              = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Duplicate names are reported as a plain validation failure.
	case errors.Is(err, store.ErrExerciseNameExists),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Validation messages are safe by construction and
// are returned verbatim.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	if vErr, ok := domain.AsValidationError(err); ok {
		return vErr.Message
	}

	switch {
	case errors.Is(err, store.ErrWorkoutNotFound):
		return msgWorkoutNotFound
	case errors.Is(err, store.ErrExerciseNotFound):
		return msgExerciseNotFound
	case errors.Is(err, store.ErrWorkoutExerciseNotFound):
		return msgWorkoutExerciseNotFound
	case errors.Is(err, store.ErrExerciseNameExists):
		return msgExerciseNameNotUnique
	case errors.Is(err, domain.ErrMalformedInput):
		return msgInvalidRequestFormat
	case errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidEntity
	default:
		return msgUnexpected
	}
}

// HandleAPIError writes the status and safe message for err. The full
// error only reaches the logs, redacted.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
