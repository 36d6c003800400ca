package entity

import (
	"time"

	"github.com/google/uuid"
)

// OperationStatus represents the lifecycle state of an operation.
type OperationStatus string

const (
	// OperationActive indicates the operator is currently using the machine.
	OperationActive OperationStatus = "ACTIVE"
	// OperationCompleted indicates the operation was stopped normally.
	OperationCompleted OperationStatus = "COMPLETED"
	// OperationCancelled indicates the operation was cancelled, manually or by the sweep.
	OperationCancelled OperationStatus = "CANCELLED"
)

// String returns the string representation of the OperationStatus.
func (s OperationStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status is immutable.
func (s OperationStatus) IsTerminal() bool {
	return s == OperationCompleted || s == OperationCancelled
}

// Operation represents one operator's continuous use of one machine.
// At most one operation may be ACTIVE per machine, and at most one per
// user system-wide; both invariants are enforced at the persistence layer.
type Operation struct {
	ID        uuid.UUID       `json:"id"`         // The Global Unique Identifier (GUID) for the operation.
	MachineID uuid.UUID       `json:"machine_id"` // The machine being operated.
	UserID    uuid.UUID       `json:"user_id"`    // The operator running the machine.
	Status    OperationStatus `json:"status"`     // The lifecycle state.
	StartTime time.Time       `json:"start_time"` // When the operation started.
	EndTime   *time.Time      `json:"end_time"`   // When the operation ended; nil while the operation is open.
	Notes     string          `json:"notes"`      // Free-text notes, including cancellation reasons.
	CreatedAt time.Time       `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time       `json:"updated_at"` // Timestamp of the last modification.
}

// Duration returns the elapsed time of the operation, using now for open operations.
func (o *Operation) Duration(now time.Time) time.Duration {
	end := now
	if o.EndTime != nil {
		end = *o.EndTime
	}
	if end.Before(o.StartTime) {
		return 0
	}

	return end.Sub(o.StartTime)
}
