package shared

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLogger returns a request whose context carries a debug-level
// logger writing into buf.
func requestWithLogger(buf *logger.TestLogBuffer) *http.Request {
	l := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	req := httptest.NewRequest(http.MethodGet, "/workouts/1", nil)
	return req.WithContext(logger.WithLogger(req.Context(), l))
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/exercises", nil)

	RespondWithJSON(rec, req, http.StatusCreated, map[string]any{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id": 1}`, rec.Body.String())
}

func TestRespondNoContent(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	RespondNoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	buf := &logger.TestLogBuffer{}
	rec := httptest.NewRecorder()

	RespondWithError(rec, requestWithLogger(buf), http.StatusNotFound, "Workout not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Workout not found"}`, rec.Body.String())

	entries := buf.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "DEBUG", entries[0]["level"])
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "client error logs at debug", status: http.StatusBadRequest, wantLevel: "DEBUG"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := &logger.TestLogBuffer{}
			rec := httptest.NewRecorder()
			err := errors.New("dial tcp db.internal:5432: connect: connection refused")

			RespondWithErrorAndLog(rec, requestWithLogger(buf), tc.status, "An unexpected error occurred", err)

			assert.Equal(t, tc.status, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, map[string]any{"error": "An unexpected error occurred"}, body)

			entries := buf.Entries()
			require.Len(t, entries, 1)
			assert.Equal(t, tc.wantLevel, entries[0]["level"])
			assert.Equal(t, "dial tcp [REDACTED_HOST]: connect: connection refused", entries[0]["error"])
			assert.NotContains(t, buf.String(), "db.internal")
		})
	}
}
