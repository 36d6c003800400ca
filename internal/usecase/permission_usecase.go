package usecase

import (
	"context"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// PermissionGrant carries the capability flags for a grant request.
type PermissionGrant struct {
	CanView     bool
	CanOperate  bool
	CanMaintain bool
	CanEdit     bool
}

// PermissionUsecase is the permission gate plus its administration surface.
type PermissionUsecase interface {
	// Check reports whether the user holds the capability on the machine.
	// A missing permission row denies every capability; there is no implicit
	// grant by role.
	Check(ctx context.Context, userID, machineID uuid.UUID, capability entity.Capability) (bool, error)

	// Grant creates or replaces the capability flags for a (user, machine) pair.
	Grant(ctx context.Context, userID, machineID uuid.UUID, grant PermissionGrant) (*entity.MachinePermission, error)

	// Revoke removes the permission row for a (user, machine) pair.
	Revoke(ctx context.Context, userID, machineID uuid.UUID) error

	// ListForUser retrieves all permissions granted to a user.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.MachinePermission, error)

	// ListForMachine retrieves all permissions attached to a machine.
	ListForMachine(ctx context.Context, machineID uuid.UUID) ([]*entity.MachinePermission, error)
}
