package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	"zara/internal/domain/service"
	mockRepo "zara/internal/mocks/repository"
	mockSvc "zara/internal/mocks/service"
	mockUC "zara/internal/mocks/usecase"
	"zara/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type machineServiceFixture struct {
	service     usecase.MachineUsecase
	machineRepo *mockRepo.MockMachineRepository
	notifier    *mockUC.MockNotificationUsecase
	publisher   *mockSvc.MockEventPublisher
	labels      *mockSvc.MockLabelService
}

func createTestMachineService(t *testing.T) *machineServiceFixture {
	f := &machineServiceFixture{
		machineRepo: mockRepo.NewMockMachineRepository(t),
		notifier:    mockUC.NewMockNotificationUsecase(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		labels:      mockSvc.NewMockLabelService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f.service = NewMachineService(f.machineRepo, f.notifier, f.publisher, f.labels, logger)

	return f
}

func stoppedMachine() *entity.Machine {
	return &entity.Machine{
		ID:              uuid.New(),
		Code:            "TEAR-07",
		Name:            "Tear circular 07",
		Status:          entity.MachineStopped,
		ProductionSpeed: 1.5,
		IsActive:        true,
	}
}

func TestRegisterMachine_Success(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()

	f.machineRepo.EXPECT().
		CreateMachine(ctx, mock.MatchedBy(func(m *entity.Machine) bool {
			return m.Code == "TEAR-07" &&
				m.Status == entity.MachineStopped &&
				m.IsActive &&
				m.ProductionSpeed == 2.0
		})).
		Return(nil)

	machine, err := f.service.RegisterMachine(ctx, usecase.MachineInput{
		Code:            "TEAR-07",
		Name:            "Tear circular 07",
		ProductionSpeed: 2.0,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.MachineStopped, machine.Status)
	assert.NotEqual(t, uuid.Nil, machine.ID)
}

func TestRegisterMachine_EmptyCode(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)

	machine, err := f.service.RegisterMachine(context.Background(), usecase.MachineInput{
		Name: "Tear sem código",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, machine)
}

func TestRegisterMachine_NegativeSpeed(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)

	machine, err := f.service.RegisterMachine(context.Background(), usecase.MachineInput{
		Code:            "TEAR-08",
		ProductionSpeed: -1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, machine)
}

func TestRegisterMachine_CodeTaken(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()

	f.machineRepo.EXPECT().
		CreateMachine(ctx, mock.Anything).
		Return(repository.ErrMachineCodeTaken)

	machine, err := f.service.RegisterMachine(ctx, usecase.MachineInput{
		Code:            "TEAR-07",
		ProductionSpeed: 1.0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrMachineCodeTaken)
	assert.Nil(t, machine)
}

func TestSetMaintenanceStatus_EntersMaintenance(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()
	machine := stoppedMachine()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.machineRepo.EXPECT().
		UpdateMachineStatus(ctx, machine.ID, entity.MachineMaintenance).
		Return(nil)
	f.notifier.EXPECT().
		DispatchToRoles(ctx, mock.MatchedBy(func(input usecase.DispatchInput) bool {
			meta, ok := input.Metadata.(entity.MachineStatusMetadata)

			return ok &&
				input.Priority == entity.PriorityHigh &&
				meta.PreviousStatus == entity.MachineStopped &&
				meta.NewStatus == entity.MachineMaintenance
		})).
		Return(1, nil)
	f.publisher.EXPECT().
		PublishMachineEvent(ctx, mock.MatchedBy(func(event *service.MachineEvent) bool {
			return event.MachineID == machine.ID.String() &&
				event.NewStatus == entity.MachineMaintenance.String()
		})).
		Return(nil)

	updated, err := f.service.SetMaintenanceStatus(ctx, machine.ID, entity.MachineMaintenance)

	require.NoError(t, err)
	assert.Equal(t, entity.MachineMaintenance, updated.Status)
}

func TestSetMaintenanceStatus_LeavesMaintenanceWithMediumPriority(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()
	machine := stoppedMachine()
	machine.Status = entity.MachineMaintenance

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.machineRepo.EXPECT().
		UpdateMachineStatus(ctx, machine.ID, entity.MachineStopped).
		Return(nil)
	f.notifier.EXPECT().
		DispatchToRoles(ctx, mock.MatchedBy(func(input usecase.DispatchInput) bool {
			return input.Priority == entity.PriorityMedium
		})).
		Return(1, nil)
	f.publisher.EXPECT().PublishMachineEvent(ctx, mock.Anything).Return(nil)

	updated, err := f.service.SetMaintenanceStatus(ctx, machine.ID, entity.MachineStopped)

	require.NoError(t, err)
	assert.Equal(t, entity.MachineStopped, updated.Status)
}

func TestSetMaintenanceStatus_RunningIsLifecycleOwned(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)

	machine, err := f.service.SetMaintenanceStatus(context.Background(), uuid.New(), entity.MachineRunning)

	assert.ErrorIs(t, err, domainerrors.ErrStatusOwnedByLifecycle)
	assert.Nil(t, machine)
}

func TestSetMaintenanceStatus_UnknownStatus(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)

	machine, err := f.service.SetMaintenanceStatus(context.Background(), uuid.New(), entity.MachineStatus("BROKEN"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, machine)
}

func TestSetMaintenanceStatus_SameStatusIsNoop(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()
	machine := stoppedMachine()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)

	updated, err := f.service.SetMaintenanceStatus(ctx, machine.ID, entity.MachineStopped)

	require.NoError(t, err)
	assert.Equal(t, entity.MachineStopped, updated.Status)
}

func TestSetMaintenanceStatus_RejectsRunningMachine(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()
	machine := stoppedMachine()
	machine.Status = entity.MachineRunning

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)

	updated, err := f.service.SetMaintenanceStatus(ctx, machine.ID, entity.MachineMaintenance)

	assert.ErrorIs(t, err, domainerrors.ErrMachineUnavailable)
	assert.Nil(t, updated)
}

func TestSetMaintenanceStatus_NotifyFailureIsBestEffort(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()
	machine := stoppedMachine()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.machineRepo.EXPECT().
		UpdateMachineStatus(ctx, machine.ID, entity.MachineMaintenance).
		Return(nil)
	f.notifier.EXPECT().DispatchToRoles(ctx, mock.Anything).Return(0, assert.AnError)
	f.publisher.EXPECT().PublishMachineEvent(ctx, mock.Anything).Return(assert.AnError)

	updated, err := f.service.SetMaintenanceStatus(ctx, machine.ID, entity.MachineMaintenance)

	require.NoError(t, err)
	assert.Equal(t, entity.MachineMaintenance, updated.Status)
}

func TestUpdateProductionSpeed_Success(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()
	machine := stoppedMachine()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.machineRepo.EXPECT().UpdateProductionSpeed(ctx, machine.ID, 3.25).Return(nil)

	updated, err := f.service.UpdateProductionSpeed(ctx, machine.ID, 3.25)

	require.NoError(t, err)
	assert.InDelta(t, 3.25, updated.ProductionSpeed, 1e-9)
}

func TestUpdateProductionSpeed_Negative(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)

	updated, err := f.service.UpdateProductionSpeed(context.Background(), uuid.New(), -0.5)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, updated)
}

func TestDeactivateMachine_Success(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()
	machine := stoppedMachine()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.machineRepo.EXPECT().DeactivateMachine(ctx, machine.ID).Return(nil)

	err := f.service.DeactivateMachine(ctx, machine.ID)

	require.NoError(t, err)
}

func TestDeactivateMachine_RejectsRunningMachine(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()
	machine := stoppedMachine()
	machine.Status = entity.MachineRunning

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)

	err := f.service.DeactivateMachine(ctx, machine.ID)

	assert.ErrorIs(t, err, domainerrors.ErrMachineUnavailable)
}

func TestGetMachine_NotFound(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()
	machineID := uuid.New()

	f.machineRepo.EXPECT().
		FindMachineByID(ctx, machineID).
		Return(nil, repository.ErrMachineNotFound)

	machine, err := f.service.GetMachine(ctx, machineID)

	assert.ErrorIs(t, err, domainerrors.ErrMachineNotFound)
	assert.Nil(t, machine)
}

func TestFloorLabel_Success(t *testing.T) {
	t.Parallel()

	f := createTestMachineService(t)
	ctx := context.Background()
	machine := stoppedMachine()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.labels.EXPECT().GenerateMachineLabel(machine.ID, machine.Code).Return(png, nil)

	label, err := f.service.FloorLabel(ctx, machine.ID)

	require.NoError(t, err)
	assert.Equal(t, png, label)
}
