// Package middleware contains the HTTP middleware shared by all routes:
// request tracing with a request-scoped logger, and Prometheus request
// metrics.
package middleware
