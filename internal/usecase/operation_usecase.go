// Package usecase defines the application-facing interfaces of the core.
package usecase

import (
	"context"
	"time"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// SweepReport summarizes one stuck-operation sweep run.
type SweepReport struct {
	Scanned   int // ACTIVE operations older than the threshold that were examined.
	Cancelled int // Operations transitioned to CANCELLED in this run.
	Failed    int // Records skipped after a per-record failure.
}

// OperationUsecase is the operation lifecycle manager: it owns every
// transition of an operation and the machine status derived from it.
type OperationUsecase interface {
	// StartOperation opens an ACTIVE operation for the user on the machine
	// after the permission gate and the at-most-one-ACTIVE invariants pass,
	// and flips the machine to RUNNING.
	StartOperation(ctx context.Context, userID, machineID uuid.UUID, notes string) (*entity.Operation, error)

	// StopOperation completes an ACTIVE operation, accrues the final shift
	// production and flips the machine back to STOPPED.
	StopOperation(ctx context.Context, operationID uuid.UUID) (*entity.Operation, error)

	// CancelOperation cancels an ACTIVE operation, recording the reason in
	// its notes, and flips the machine back to STOPPED.
	CancelOperation(ctx context.Context, operationID uuid.UUID, reason string) (*entity.Operation, error)

	// SweepStuckOperations cancels ACTIVE operations older than maxAge with a
	// system-generated note. Per-record failures are logged and skipped so
	// one bad record never aborts the sweep. Running it twice is a no-op.
	SweepStuckOperations(ctx context.Context, maxAge time.Duration) (*SweepReport, error)

	// GetOperation retrieves one operation.
	GetOperation(ctx context.Context, operationID uuid.UUID) (*entity.Operation, error)

	// ListActiveOperations retrieves all currently ACTIVE operations.
	ListActiveOperations(ctx context.Context) ([]*entity.Operation, error)
}
