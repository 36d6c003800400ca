package repository

import (
	"context"
	"errors"
	"time"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for shift data persistence.
var (
	// ErrShiftDataNotFound is returned when a shift record is not found.
	ErrShiftDataNotFound = errors.New("shift data not found")
)

// ShiftRepository defines the interface for shift production aggregates.
type ShiftRepository interface {
	// RaiseProduction lazily creates the (machine, date, type) record for the
	// window and raises TotalProduction to at least total. The write never
	// decreases the stored value, so repeated or racing accruals are safe.
	RaiseProduction(ctx context.Context, machineID uuid.UUID, window entity.ShiftWindow, total int, efficiency float64) error

	// FindShiftData retrieves one aggregate by its (machine, date, type) key.
	FindShiftData(ctx context.Context, machineID uuid.UUID, date time.Time, shiftType entity.ShiftType) (*entity.ShiftData, error)

	// ListShiftDataByMachine retrieves aggregates for a machine, newest first.
	ListShiftDataByMachine(ctx context.Context, machineID uuid.UUID, limit, offset int) ([]*entity.ShiftData, error)
}
