package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "zara/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSingleRetry_TransientFailureThenSuccess(t *testing.T) {
	calls := 0

	err := withSingleRetry(context.Background(), func() error {
		calls++
		if calls == 1 {
			return domainerrors.NewDatabaseExecuteError(assert.AnError, "deadlock detected")
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithSingleRetry_TransientFailureRetriedExactlyOnce(t *testing.T) {
	calls := 0
	storageErr := domainerrors.NewDatabaseExecuteError(assert.AnError, "connection reset")

	err := withSingleRetry(context.Background(), func() error {
		calls++

		return storageErr
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, storageErr)
}

func TestWithSingleRetry_BusinessErrorBypassesRetry(t *testing.T) {
	calls := 0
	start := time.Now()

	err := withSingleRetry(context.Background(), func() error {
		calls++

		return domainerrors.ErrOperatorBusy
	})

	require.ErrorIs(t, err, domainerrors.ErrOperatorBusy)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), transientRetryDelay)
}

func TestWithSingleRetry_NilErrorRunsOnce(t *testing.T) {
	calls := 0

	err := withSingleRetry(context.Background(), func() error {
		calls++

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithSingleRetry_CancelledContextSkipsBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	storageErr := domainerrors.NewDatabaseExecuteError(assert.AnError, "timeout")

	err := withSingleRetry(ctx, func() error {
		calls++

		return storageErr
	})

	require.ErrorIs(t, err, storageErr)
	assert.Equal(t, 1, calls)
}
