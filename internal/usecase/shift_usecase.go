package usecase

import (
	"context"
	"time"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// ShiftUsecase is the shift production aggregator. Accrual always recomputes
// from the operation start time instead of applying increments, so repeated
// calls with a monotonically increasing clock never double-count.
type ShiftUsecase interface {
	// AccrueProduction recomputes the production accrued by the machine's
	// ACTIVE operation inside the shift window containing now, and raises the
	// stored total to at least that value. A machine that is not RUNNING, or
	// has no ACTIVE operation, accrues nothing; the call is then a no-op.
	AccrueProduction(ctx context.Context, machineID uuid.UUID, now time.Time) error

	// AccrueAllRunning accrues production for every ACTIVE operation.
	// Per-machine failures are logged and skipped.
	AccrueAllRunning(ctx context.Context, now time.Time) error

	// GetShiftData retrieves one aggregate by (machine, date, type).
	GetShiftData(ctx context.Context, machineID uuid.UUID, date time.Time, shiftType entity.ShiftType) (*entity.ShiftData, error)

	// ListShiftData retrieves a machine's aggregates, newest first.
	ListShiftData(ctx context.Context, machineID uuid.UUID, limit, offset int) ([]*entity.ShiftData, error)
}
