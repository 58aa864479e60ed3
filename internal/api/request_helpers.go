package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Path parameter names.
const (
	paramID         = "id"
	paramWorkoutID  = "workoutId"
	paramExerciseID = "exerciseId"
)

// getPathID extracts a non-negative integer ID from the URL path.
//
// Only plain decimal digits are accepted. Anything else, including signs
// and values beyond int64, is reported as notFound: such a path names no
// entity, the same as an ID that has no row.
func getPathID(r *http.Request, paramName string, notFound error) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, notFound
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, notFound
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, notFound
	}
	return id, nil
}

// handlePathID is getPathID that writes the error response itself.
// It returns false when a response has been written.
func handlePathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	notFound error,
	log *slog.Logger,
) (int64, bool) {
	id, err := getPathID(r, paramName, notFound)
	if err != nil {
		log.Debug("path parameter names no entity",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err)
		return 0, false
	}
	return id, true
}
