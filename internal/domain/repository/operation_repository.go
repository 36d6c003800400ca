package repository

import (
	"context"
	"errors"
	"time"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for operation persistence.
var (
	// ErrOperationNotFound is returned when an operation is not found.
	ErrOperationNotFound = errors.New("operation not found")
	// ErrActiveOperationExists is returned when an insert would violate the
	// at-most-one-ACTIVE invariant for the machine or the user.
	ErrActiveOperationExists = errors.New("an active operation already exists")
	// ErrOperationNotActive is returned when a guarded transition finds the
	// operation no longer ACTIVE.
	ErrOperationNotActive = errors.New("operation is not active")
)

// OperationRepository defines the interface for operation-related database
// operations. The at-most-one-ACTIVE invariants are enforced here through
// partial unique indexes, so concurrent starts lose the race atomically.
type OperationRepository interface {
	// CreateOperation persists a new ACTIVE operation. Returns
	// ErrActiveOperationExists when the machine or the user already holds one.
	CreateOperation(ctx context.Context, operation *entity.Operation) error

	// FindOperationByID retrieves an operation by its unique ID.
	FindOperationByID(ctx context.Context, id uuid.UUID) (*entity.Operation, error)

	// FindActiveByMachine retrieves the single ACTIVE operation on a machine.
	// Returns (nil, nil) when the machine has no open operation.
	FindActiveByMachine(ctx context.Context, machineID uuid.UUID) (*entity.Operation, error)

	// FindActiveByUser retrieves the single ACTIVE operation held by a user.
	// Returns (nil, nil) when the user has no open operation.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Operation, error)

	// ListActive retrieves all ACTIVE operations.
	ListActive(ctx context.Context) ([]*entity.Operation, error)

	// ListActiveOlderThan retrieves ACTIVE operations with a start time before the cutoff.
	ListActiveOlderThan(ctx context.Context, cutoff time.Time) ([]*entity.Operation, error)

	// CloseOperation transitions an ACTIVE operation to a terminal status,
	// setting the end time and appending notes. The update is guarded on
	// status = ACTIVE; ErrOperationNotActive signals a lost race.
	CloseOperation(ctx context.Context, id uuid.UUID, status entity.OperationStatus, endTime time.Time, notes string) error
}
