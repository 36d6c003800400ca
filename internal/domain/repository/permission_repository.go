package repository

import (
	"context"
	"errors"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for permission persistence.
var (
	// ErrPermissionNotFound is returned when no permission row exists for the pair.
	ErrPermissionNotFound = errors.New("machine permission not found")
)

// PermissionRepository defines the interface for machine permission rows.
// Absence of a row means every capability is denied.
type PermissionRepository interface {
	// UpsertPermission creates or replaces the capability flags for a (user, machine) pair.
	UpsertPermission(ctx context.Context, permission *entity.MachinePermission) error

	// FindPermission retrieves the permission row for a (user, machine) pair.
	FindPermission(ctx context.Context, userID, machineID uuid.UUID) (*entity.MachinePermission, error)

	// DeletePermission removes the permission row for a (user, machine) pair.
	DeletePermission(ctx context.Context, userID, machineID uuid.UUID) error

	// ListByUser retrieves all permission rows granted to a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MachinePermission, error)

	// ListByMachine retrieves all permission rows attached to a machine.
	ListByMachine(ctx context.Context, machineID uuid.UUID) ([]*entity.MachinePermission, error)
}
