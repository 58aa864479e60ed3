package sqlstore

import (
	"time"

	"github.com/phrazzld/workout-api/internal/observability"
)

// observe records a finished store operation. Call it deferred with a
// pointer to the named error result: defer observe(entity, op, time.Now(), &err).
func observe(entity, operation string, start time.Time, errp *error) {
	observability.ObserveStoreOp(entity, operation, start, *errp)
}
