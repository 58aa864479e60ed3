package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apimiddleware "github.com/phrazzld/workout-api/internal/api/middleware"
	"github.com/phrazzld/workout-api/internal/api/shared"
)

// NewRouter builds the chi router serving every route of the service,
// plus /health and /metrics.
func NewRouter(exercises *ExerciseHandler, workouts *WorkoutHandler, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace(logger))
	r.Use(apimiddleware.Metrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/workouts", func(r chi.Router) {
		r.Get("/", workouts.ListWorkouts)
		r.Post("/", workouts.CreateWorkout)
		r.Get("/{id}", workouts.GetWorkout)
		r.Delete("/{id}", workouts.DeleteWorkout)
		r.Post("/{workoutId}/exercises/{exerciseId}/workout_exercises", workouts.AddExerciseToWorkout)
	})

	r.Route("/exercises", func(r chi.Router) {
		r.Get("/", exercises.ListExercises)
		r.Post("/", exercises.CreateExercise)
		r.Get("/{id}", exercises.GetExercise)
		r.Delete("/{id}", exercises.DeleteExercise)
	})

	r.Route("/workout_exercises", func(r chi.Router) {
		r.Get("/{id}", workouts.GetWorkoutExercise)
		r.Delete("/{id}", workouts.DeleteWorkoutExercise)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
