// Package observability registers the Prometheus collectors exported on /metrics.
package observability

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/store"
)

const namespace = "workouts"

var (
	httpRequestsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by route pattern, method and status code.",
	}, []string{"route", "method", "status"})

	httpDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests, by route pattern and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	storeOpsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Store operations, by entity, operation and outcome.",
	}, []string{"entity", "operation", "outcome"})

	storeDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Latency of store operations, by entity and operation.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"entity", "operation"})
)

func init() {
	prometheus.MustRegister(httpRequestsCounter, httpDurationHistogram, storeOpsCounter, storeDurationHistogram)
}

// Outcome labels recorded for store operations.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// RecordHTTPRequest counts one handled request and observes its latency.
// route is the chi route pattern, not the raw path, to keep cardinality bounded.
func RecordHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsCounter.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDurationHistogram.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveStoreOp records the outcome and latency of a store operation that
// started at start and finished with err.
func ObserveStoreOp(entity, operation string, start time.Time, err error) {
	storeOpsCounter.WithLabelValues(entity, operation, Outcome(err)).Inc()
	storeDurationHistogram.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
}

// Outcome classifies err into one of the outcome labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case store.IsNotFoundError(err):
		return OutcomeNotFound
	case store.IsDuplicateError(err):
		return OutcomeDuplicate
	case errors.Is(err, store.ErrInvalidEntity), errors.Is(err, domain.ErrValidation):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
