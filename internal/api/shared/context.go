package shared

import (
	"context"
	"log/slog"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader carries the trace ID back to the client so that error
	// bodies can stay exactly {"error": msg}.
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID(ctx))
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns a random UUID. If the random source fails it
// falls back to chi's request ID, which is unique per process.
func generateTraceID(ctx context.Context) string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}

	slog.Error("failed to generate random trace ID",
		"error", err,
		"fallback", "request_id")
	return chimiddleware.GetReqID(ctx)
}
