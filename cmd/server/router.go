package main

import (
	"net/http"

	"github.com/phrazzld/workout-api/internal/api"
)

// setupRouter creates the HTTP handlers from the application's services
// and returns the configured router.
func (app *application) setupRouter() http.Handler {
	exerciseHandler := api.NewExerciseHandler(app.exerciseService, app.logger)
	workoutHandler := api.NewWorkoutHandler(app.workoutService, app.logger)

	return api.NewRouter(exerciseHandler, workoutHandler, app.logger)
}
