package impl

import (
	"context"
	"time"

	domainerrors "zara/internal/domain/errors"
	"zara/internal/errors"
)

// transientRetryDelay is the backoff before the single retry of a storage
// operation that failed transiently.
const transientRetryDelay = 200 * time.Millisecond

// withSingleRetry runs fn, retrying exactly once after a short backoff when
// the failure looks transient at the storage boundary. Anything else, and
// the second failure, surface to the caller.
func withSingleRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || !isTransientStorageError(err) {
		return err
	}

	select {
	case <-ctx.Done():
		return err
	case <-time.After(transientRetryDelay):
	}

	return fn()
}

func isTransientStorageError(err error) bool {
	var dbErr *domainerrors.DatabaseExecuteError

	return errors.As(err, &dbErr)
}
