package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/workout-api/internal/api/shared"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/phrazzld/workout-api/internal/service"
	"github.com/phrazzld/workout-api/internal/store"
)

const msgExerciseAdded = "Exercise added to workout"

// WorkoutHandler handles workout and workout exercise HTTP requests
type WorkoutHandler struct {
	workoutService service.WorkoutService
	logger         *slog.Logger
}

// NewWorkoutHandler creates a new WorkoutHandler
func NewWorkoutHandler(workoutService service.WorkoutService, logger *slog.Logger) *WorkoutHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkoutHandler{
		workoutService: workoutService,
		logger:         logger.With(slog.String("component", "workout_handler")),
	}
}

// ListWorkouts handles GET /workouts
func (h *WorkoutHandler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.workoutService.ListWorkouts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, workoutsToResponse(workouts))
}

// GetWorkout handles GET /workouts/{id}
func (h *WorkoutHandler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, paramID, store.ErrWorkoutNotFound, log)
	if !ok {
		return
	}

	workout, err := h.workoutService.GetWorkout(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, workoutToResponse(workout))
}

// CreateWorkout handles POST /workouts
func (h *WorkoutHandler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var in domain.WorkoutInput
	if err := shared.DecodeJSON(r, &in); err != nil {
		log.Debug("malformed workout payload", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequestFormat)
		return
	}

	workout, err := h.workoutService.CreateWorkout(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("workout created", slog.Int64("workout_id", workout.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, workoutToResponse(workout))
}

// DeleteWorkout handles DELETE /workouts/{id}
func (h *WorkoutHandler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, paramID, store.ErrWorkoutNotFound, log)
	if !ok {
		return
	}

	if err := h.workoutService.DeleteWorkout(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("workout deleted", slog.Int64("workout_id", id))
	shared.RespondNoContent(w)
}

// AddExerciseToWorkout handles
// POST /workouts/{workoutId}/exercises/{exerciseId}/workout_exercises.
//
// A missing workout, then a missing exercise, take precedence over any
// problem with the body, including one that is not JSON at all.
func (h *WorkoutHandler) AddExerciseToWorkout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	workoutID, ok := handlePathID(w, r, paramWorkoutID, store.ErrWorkoutNotFound, log)
	if !ok {
		return
	}
	exerciseID, ok := handlePathID(w, r, paramExerciseID, store.ErrExerciseNotFound, log)
	if !ok {
		return
	}

	var in domain.WorkoutExerciseInput
	if err := shared.DecodeJSON(r, &in); err != nil {
		in = domain.WorkoutExerciseInput{DecodeErr: err}
	}

	we, err := h.workoutService.AddExerciseToWorkout(r.Context(), workoutID, exerciseID, in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("exercise added to workout",
		slog.Int64("workout_id", workoutID),
		slog.Int64("exercise_id", exerciseID),
		slog.Int64("workout_exercise_id", we.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, AddExerciseResponse{
		Message:           msgExerciseAdded,
		WorkoutExerciseID: we.ID,
	})
}

// GetWorkoutExercise handles GET /workout_exercises/{id}
func (h *WorkoutHandler) GetWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, paramID, store.ErrWorkoutExerciseNotFound, log)
	if !ok {
		return
	}

	we, err := h.workoutService.GetWorkoutExercise(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, workoutExerciseToResponse(we))
}

// DeleteWorkoutExercise handles DELETE /workout_exercises/{id}
func (h *WorkoutHandler) DeleteWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, paramID, store.ErrWorkoutExerciseNotFound, log)
	if !ok {
		return
	}

	if err := h.workoutService.DeleteWorkoutExercise(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("workout exercise deleted", slog.Int64("workout_exercise_id", id))
	shared.RespondNoContent(w)
}
