package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/store"
)

// Error handling principles:
// 1. Expected conditions (not found, duplicate name, validation) are returned
//    as the store/domain sentinels so callers can use errors.Is / errors.As
// 2. Unexpected errors are wrapped in ServiceError with the failing operation
// 3. The API layer maps these errors to HTTP status codes

// ServiceError wraps unexpected errors from a service operation with context.
type ServiceError struct {
	// Service is the service that failed (e.g., "exercise", "workout")
	Service string
	// Op is the operation that failed (e.g., "create_exercise")
	Op string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// wrapError returns expected errors unchanged and wraps everything else in a ServiceError.
func wrapError(service, op string, err error) error {
	if err == nil {
		return nil
	}
	if isExpected(err) {
		return err
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return err
	}
	return &ServiceError{Service: service, Op: op, Err: err}
}

// isExpected reports whether err describes a client-caused condition.
func isExpected(err error) bool {
	return store.IsNotFoundError(err) ||
		store.IsDuplicateError(err) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrMalformedInput)
}
