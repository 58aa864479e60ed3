package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workout-api/internal/api"
	"github.com/phrazzld/workout-api/internal/platform/sqlstore"
	"github.com/phrazzld/workout-api/internal/service"
	"github.com/phrazzld/workout-api/internal/testdb"
)

// newTestRouter serves the full route table over a fresh in-memory database.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db := testdb.New(t)
	exerciseStore := sqlstore.NewExerciseStore(db, testdb.Dialect, nil)
	workoutStore := sqlstore.NewWorkoutStore(db, testdb.Dialect, nil)
	workoutExerciseStore := sqlstore.NewWorkoutExerciseStore(db, testdb.Dialect, nil)

	exercises, err := service.NewExerciseService(db, exerciseStore, nil)
	require.NoError(t, err)
	workouts, err := service.NewWorkoutService(db, workoutStore, exerciseStore, workoutExerciseStore, nil)
	require.NoError(t, err)

	return api.NewRouter(api.NewExerciseHandler(exercises, nil), api.NewWorkoutHandler(workouts, nil), nil)
}

// do sends a request with an optional raw JSON body.
func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// mustCreate posts body to path, requires 201 and returns the created ID.
func mustCreate(t *testing.T, h http.Handler, path, body string) int64 {
	t.Helper()

	rec := do(t, h, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[struct {
		ID int64 `json:"id"`
	}](t, rec).ID
}
