package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"zara/config"
	mockUC "zara/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_StopBeforeServe(t *testing.T) {
	s := &scheduler{
		cfg:    &config.Config{},
		logger: testLogger(),
		done:   make(chan struct{}),
	}

	// Shutdown may fire before the serve goroutine gets scheduled.
	require.NoError(t, s.stop(context.Background()))

	served := make(chan error, 1)
	go func() {
		served <- s.Serve(context.Background())
	}()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}
}

func TestScheduler_AccrualLoopRunsUntilStopped(t *testing.T) {
	shiftUC := mockUC.NewMockShiftUsecase(t)
	shiftUC.EXPECT().AccrueAllRunning(mock.Anything, mock.Anything).Return(nil).Maybe()

	s := &scheduler{
		cfg: &config.Config{
			Sweep: &config.SweepConfig{
				Enabled:         false,
				Interval:        time.Hour,
				MaxAge:          time.Hour,
				AccrualInterval: 5 * time.Millisecond,
			},
		},
		logger:  testLogger(),
		shiftUC: shiftUC,
		done:    make(chan struct{}),
	}

	served := make(chan error, 1)
	go func() {
		served <- s.Serve(context.Background())
	}()

	// Give the accrual ticker a few turns before shutting down.
	time.Sleep(30 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.stop(stopCtx))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}
}
