// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"time"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	"zara/internal/errors"
	"zara/internal/usecase"

	"github.com/google/uuid"
)

type permissionService struct {
	permissionRepo repository.PermissionRepository
	machineRepo    repository.MachineRepository
	userRepo       repository.UserRepository
}

// NewPermissionService creates a new permission gate instance.
func NewPermissionService(
	permissionRepo repository.PermissionRepository,
	machineRepo repository.MachineRepository,
	userRepo repository.UserRepository,
) usecase.PermissionUsecase {
	return &permissionService{
		permissionRepo: permissionRepo,
		machineRepo:    machineRepo,
		userRepo:       userRepo,
	}
}

// Check reports whether the user holds the capability on the machine.
// Default-deny: a missing row answers false for every capability.
func (s *permissionService) Check(ctx context.Context, userID, machineID uuid.UUID, capability entity.Capability) (bool, error) {
	if !capability.IsValid() {
		return false, domainerrors.ErrValidationFailed.WithDetails("capacidade desconhecida: " + string(capability))
	}

	permission, err := s.permissionRepo.FindPermission(ctx, userID, machineID)
	if err != nil {
		if errors.Is(err, repository.ErrPermissionNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check machine permission")
	}

	return permission.Allows(capability), nil
}

// Grant creates or replaces the capability flags for a (user, machine) pair.
func (s *permissionService) Grant(ctx context.Context, userID, machineID uuid.UUID, grant usecase.PermissionGrant) (*entity.MachinePermission, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for grant")
	}
	if _, err := s.machineRepo.FindMachineByID(ctx, machineID); err != nil {
		if errors.Is(err, repository.ErrMachineNotFound) {
			return nil, domainerrors.ErrMachineNotFound
		}

		return nil, errors.Wrap(err, "failed to load machine for grant")
	}

	now := time.Now()
	permission := &entity.MachinePermission{
		ID:          uuid.New(),
		UserID:      userID,
		MachineID:   machineID,
		CanView:     grant.CanView,
		CanOperate:  grant.CanOperate,
		CanMaintain: grant.CanMaintain,
		CanEdit:     grant.CanEdit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.permissionRepo.UpsertPermission(ctx, permission); err != nil {
		return nil, errors.Wrap(err, "failed to upsert machine permission")
	}

	return permission, nil
}

// Revoke removes the permission row for a (user, machine) pair.
func (s *permissionService) Revoke(ctx context.Context, userID, machineID uuid.UUID) error {
	if err := s.permissionRepo.DeletePermission(ctx, userID, machineID); err != nil {
		if errors.Is(err, repository.ErrPermissionNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to revoke machine permission")
	}

	return nil
}

// ListForUser retrieves all permissions granted to a user.
func (s *permissionService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.MachinePermission, error) {
	permissions, err := s.permissionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list permissions by user")
	}

	return permissions, nil
}

// ListForMachine retrieves all permissions attached to a machine.
func (s *permissionService) ListForMachine(ctx context.Context, machineID uuid.UUID) ([]*entity.MachinePermission, error) {
	permissions, err := s.permissionRepo.ListByMachine(ctx, machineID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list permissions by machine")
	}

	return permissions, nil
}
