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

// ExerciseHandler handles exercise-related HTTP requests
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	logger          *slog.Logger
}

// NewExerciseHandler creates a new ExerciseHandler
func NewExerciseHandler(exerciseService service.ExerciseService, logger *slog.Logger) *ExerciseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExerciseHandler{
		exerciseService: exerciseService,
		logger:          logger.With(slog.String("component", "exercise_handler")),
	}
}

// ListExercises handles GET /exercises
func (h *ExerciseHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exerciseService.ListExercises(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, exercisesToResponse(exercises))
}

// GetExercise handles GET /exercises/{id}. The response lists every workout
// the exercise appears in.
func (h *ExerciseHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, paramID, store.ErrExerciseNotFound, log)
	if !ok {
		return
	}

	detail, err := h.exerciseService.GetExercise(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, exerciseDetailToResponse(detail))
}

// CreateExercise handles POST /exercises
func (h *ExerciseHandler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var in domain.ExerciseInput
	if err := shared.DecodeJSON(r, &in); err != nil {
		log.Debug("malformed exercise payload", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequestFormat)
		return
	}

	exercise, err := h.exerciseService.CreateExercise(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("exercise created", slog.Int64("exercise_id", exercise.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, exerciseToResponse(exercise))
}

// DeleteExercise handles DELETE /exercises/{id}. The exercise's workout
// exercises are removed with it.
func (h *ExerciseHandler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, paramID, store.ErrExerciseNotFound, log)
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteExercise(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("exercise deleted", slog.Int64("exercise_id", id))
	shared.RespondNoContent(w)
}
