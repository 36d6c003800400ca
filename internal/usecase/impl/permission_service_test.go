package impl

import (
	"context"
	"testing"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	mockRepo "zara/internal/mocks/repository"
	"zara/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPermissionService(t *testing.T) (
	usecase.PermissionUsecase,
	*mockRepo.MockPermissionRepository,
	*mockRepo.MockMachineRepository,
	*mockRepo.MockUserRepository,
) {
	permissionRepo := mockRepo.NewMockPermissionRepository(t)
	machineRepo := mockRepo.NewMockMachineRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewPermissionService(permissionRepo, machineRepo, userRepo)

	return service, permissionRepo, machineRepo, userRepo
}

func TestPermissionService_Check_GrantedCapability(t *testing.T) {
	service, permissionRepo, _, _ := createTestPermissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	machineID := uuid.New()

	permissionRepo.EXPECT().FindPermission(ctx, userID, machineID).Return(&entity.MachinePermission{
		UserID:     userID,
		MachineID:  machineID,
		CanView:    true,
		CanOperate: true,
	}, nil)

	allowed, err := service.Check(ctx, userID, machineID, entity.CapabilityOperate)

	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestPermissionService_Check_MissingCapabilityDenied(t *testing.T) {
	service, permissionRepo, _, _ := createTestPermissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	machineID := uuid.New()

	// The row exists but the requested capability was never granted.
	permissionRepo.EXPECT().FindPermission(ctx, userID, machineID).Return(&entity.MachinePermission{
		UserID:    userID,
		MachineID: machineID,
		CanView:   true,
	}, nil)

	allowed, err := service.Check(ctx, userID, machineID, entity.CapabilityMaintain)

	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestPermissionService_Check_NoRowDefaultDeny(t *testing.T) {
	service, permissionRepo, _, _ := createTestPermissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	machineID := uuid.New()

	permissionRepo.EXPECT().FindPermission(ctx, userID, machineID).
		Return(nil, repository.ErrPermissionNotFound)

	allowed, err := service.Check(ctx, userID, machineID, entity.CapabilityView)

	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestPermissionService_Check_InvalidCapability(t *testing.T) {
	service, _, _, _ := createTestPermissionService(t)
	ctx := context.Background()

	_, err := service.Check(ctx, uuid.New(), uuid.New(), entity.Capability("fly"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPermissionService_Grant_Success(t *testing.T) {
	service, permissionRepo, machineRepo, userRepo := createTestPermissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	machineID := uuid.New()

	userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{ID: userID, IsActive: true}, nil)
	machineRepo.EXPECT().FindMachineByID(ctx, machineID).Return(&entity.Machine{ID: machineID}, nil)
	permissionRepo.EXPECT().UpsertPermission(ctx, mock.MatchedBy(func(p *entity.MachinePermission) bool {
		return p.UserID == userID && p.MachineID == machineID && p.CanOperate && !p.CanEdit
	})).Return(nil)

	permission, err := service.Grant(ctx, userID, machineID, usecase.PermissionGrant{
		CanView:    true,
		CanOperate: true,
	})

	require.NoError(t, err)
	assert.True(t, permission.CanOperate)
	assert.False(t, permission.CanMaintain)
}

func TestPermissionService_Grant_UnknownUser(t *testing.T) {
	service, _, _, userRepo := createTestPermissionService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := service.Grant(ctx, userID, uuid.New(), usecase.PermissionGrant{CanView: true})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPermissionService_Grant_UnknownMachine(t *testing.T) {
	service, _, machineRepo, userRepo := createTestPermissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	machineID := uuid.New()

	userRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	machineRepo.EXPECT().FindMachineByID(ctx, machineID).Return(nil, repository.ErrMachineNotFound)

	_, err := service.Grant(ctx, userID, machineID, usecase.PermissionGrant{CanView: true})

	assert.ErrorIs(t, err, domainerrors.ErrMachineNotFound)
}

func TestPermissionService_Revoke_NotFound(t *testing.T) {
	service, permissionRepo, _, _ := createTestPermissionService(t)
	ctx := context.Background()
	userID := uuid.New()
	machineID := uuid.New()

	permissionRepo.EXPECT().DeletePermission(ctx, userID, machineID).
		Return(repository.ErrPermissionNotFound)

	err := service.Revoke(ctx, userID, machineID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPermissionService_ListForUser(t *testing.T) {
	service, permissionRepo, _, _ := createTestPermissionService(t)
	ctx := context.Background()
	userID := uuid.New()

	rows := []*entity.MachinePermission{
		{UserID: userID, MachineID: uuid.New(), CanView: true},
		{UserID: userID, MachineID: uuid.New(), CanOperate: true},
	}
	permissionRepo.EXPECT().ListByUser(ctx, userID).Return(rows, nil)

	permissions, err := service.ListForUser(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, permissions, 2)
}
