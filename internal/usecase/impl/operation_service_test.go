package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	mockRepo "zara/internal/mocks/repository"
	mockSvc "zara/internal/mocks/service"
	mockUC "zara/internal/mocks/usecase"
	"zara/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type operationServiceFixture struct {
	service     usecase.OperationUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	machineRepo *mockRepo.MockMachineRepository
	opRepo      *mockRepo.MockOperationRepository
	permissions *mockUC.MockPermissionUsecase
	shifts      *mockUC.MockShiftUsecase
	notifier    *mockUC.MockNotificationUsecase
	publisher   *mockSvc.MockEventPublisher
}

func createTestOperationService(t *testing.T) *operationServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	machineRepo := mockRepo.NewMockMachineRepository(t)
	opRepo := mockRepo.NewMockOperationRepository(t)
	permissions := mockUC.NewMockPermissionUsecase(t)
	shifts := mockUC.NewMockShiftUsecase(t)
	notifier := mockUC.NewMockNotificationUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewOperationService(txManager, machineRepo, opRepo, permissions, shifts, notifier, publisher, logger)

	return &operationServiceFixture{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		machineRepo: machineRepo,
		opRepo:      opRepo,
		permissions: permissions,
		shifts:      shifts,
		notifier:    notifier,
		publisher:   publisher,
	}
}

// expectTransaction makes the transaction manager run the supplied function
// against the fixture's factory, which resolves to the same repository mocks
// used outside the transaction.
func (f *operationServiceFixture) expectTransaction() {
	f.factory.EXPECT().NewOperationRepository().Return(f.opRepo).Maybe()
	f.factory.EXPECT().NewMachineRepository().Return(f.machineRepo).Maybe()
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func operableMachine() *entity.Machine {
	return &entity.Machine{
		ID:              uuid.New(),
		Code:            "TEAR-01",
		Name:            "Tear circular 01",
		Status:          entity.MachineStopped,
		ProductionSpeed: 2.5,
		IsActive:        true,
	}
}

func TestOperationService_StartOperation_Success(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	machine := operableMachine()
	userID := uuid.New()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.permissions.EXPECT().Check(ctx, userID, machine.ID, entity.CapabilityOperate).Return(true, nil)

	f.expectTransaction()
	f.opRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, nil)
	f.opRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(nil, nil)
	f.opRepo.EXPECT().CreateOperation(ctx, mock.Anything).Return(nil)
	f.machineRepo.EXPECT().UpdateMachineStatus(ctx, machine.ID, entity.MachineRunning).Return(nil)

	f.notifier.EXPECT().DispatchToRoles(ctx, mock.Anything).Return(1, nil)
	f.publisher.EXPECT().PublishMachineEvent(ctx, mock.Anything).Return(nil)

	operation, err := f.service.StartOperation(ctx, userID, machine.ID, "turno da manhã")

	require.NoError(t, err)
	require.NotNil(t, operation)
	assert.Equal(t, entity.OperationActive, operation.Status)
	assert.Equal(t, userID, operation.UserID)
	assert.Equal(t, machine.ID, operation.MachineID)
	assert.Nil(t, operation.EndTime)
}

func TestOperationService_StartOperation_OperatorBusy(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	machine := operableMachine()
	userID := uuid.New()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.permissions.EXPECT().Check(ctx, userID, machine.ID, entity.CapabilityOperate).Return(true, nil)

	f.expectTransaction()
	f.opRepo.EXPECT().FindActiveByUser(ctx, userID).
		Return(&entity.Operation{ID: uuid.New(), UserID: userID, Status: entity.OperationActive}, nil)

	operation, err := f.service.StartOperation(ctx, userID, machine.ID, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOperatorBusy)
	assert.Nil(t, operation)
}

func TestOperationService_StartOperation_MachineBusy(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	machine := operableMachine()
	userID := uuid.New()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.permissions.EXPECT().Check(ctx, userID, machine.ID, entity.CapabilityOperate).Return(true, nil)

	f.expectTransaction()
	f.opRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, nil)
	f.opRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).
		Return(&entity.Operation{ID: uuid.New(), MachineID: machine.ID, Status: entity.OperationActive}, nil)

	operation, err := f.service.StartOperation(ctx, userID, machine.ID, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMachineBusy)
	assert.Nil(t, operation)
}

func TestOperationService_StartOperation_LostInsertRace(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	machine := operableMachine()
	userID := uuid.New()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.permissions.EXPECT().Check(ctx, userID, machine.ID, entity.CapabilityOperate).Return(true, nil)

	// Both pre-checks pass but a concurrent start wins the insert.
	f.expectTransaction()
	f.opRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, nil)
	f.opRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(nil, nil)
	f.opRepo.EXPECT().CreateOperation(ctx, mock.Anything).Return(repository.ErrActiveOperationExists)

	operation, err := f.service.StartOperation(ctx, userID, machine.ID, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMachineBusy)
	assert.Nil(t, operation)
}

func TestOperationService_StartOperation_PermissionDenied(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	machine := operableMachine()
	userID := uuid.New()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.permissions.EXPECT().Check(ctx, userID, machine.ID, entity.CapabilityOperate).Return(false, nil)

	operation, err := f.service.StartOperation(ctx, userID, machine.ID, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Nil(t, operation)
}

func TestOperationService_StartOperation_MachineUnavailable(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	userID := uuid.New()

	machine := operableMachine()
	machine.Status = entity.MachineMaintenance

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)

	operation, err := f.service.StartOperation(ctx, userID, machine.ID, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMachineUnavailable)
	assert.Nil(t, operation)
}

func TestOperationService_StartOperation_DeactivatedMachine(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	userID := uuid.New()

	machine := operableMachine()
	machine.IsActive = false

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)

	_, err := f.service.StartOperation(ctx, userID, machine.ID, "")

	assert.ErrorIs(t, err, domainerrors.ErrMachineUnavailable)
}

func TestOperationService_StopOperation_Success(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	machine := operableMachine()
	machine.Status = entity.MachineRunning

	operation := &entity.Operation{
		ID:        uuid.New(),
		MachineID: machine.ID,
		UserID:    uuid.New(),
		Status:    entity.OperationActive,
		StartTime: time.Now().Add(-2 * time.Hour),
	}

	f.opRepo.EXPECT().FindOperationByID(ctx, operation.ID).Return(operation, nil)
	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.shifts.EXPECT().AccrueProduction(ctx, machine.ID, mock.Anything).Return(nil)

	f.expectTransaction()
	f.opRepo.EXPECT().
		CloseOperation(ctx, operation.ID, entity.OperationCompleted, mock.Anything, "").
		Return(nil)
	f.opRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(nil, nil)
	f.machineRepo.EXPECT().UpdateMachineStatus(ctx, machine.ID, entity.MachineStopped).Return(nil)

	f.notifier.EXPECT().DispatchToRoles(ctx, mock.Anything).Return(1, nil)
	f.publisher.EXPECT().PublishMachineEvent(ctx, mock.Anything).Return(nil)

	stopped, err := f.service.StopOperation(ctx, operation.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OperationCompleted, stopped.Status)
	require.NotNil(t, stopped.EndTime)
}

func TestOperationService_StopOperation_AccrualFailureDoesNotBlock(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	machine := operableMachine()
	machine.Status = entity.MachineRunning

	operation := &entity.Operation{
		ID:        uuid.New(),
		MachineID: machine.ID,
		UserID:    uuid.New(),
		Status:    entity.OperationActive,
		StartTime: time.Now().Add(-time.Hour),
	}

	f.opRepo.EXPECT().FindOperationByID(ctx, operation.ID).Return(operation, nil)
	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.shifts.EXPECT().AccrueProduction(ctx, machine.ID, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(assert.AnError, "accrual failed"))

	f.expectTransaction()
	f.opRepo.EXPECT().
		CloseOperation(ctx, operation.ID, entity.OperationCompleted, mock.Anything, "").
		Return(nil)
	f.opRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(nil, nil)
	f.machineRepo.EXPECT().UpdateMachineStatus(ctx, machine.ID, entity.MachineStopped).Return(nil)

	f.notifier.EXPECT().DispatchToRoles(ctx, mock.Anything).Return(1, nil)
	f.publisher.EXPECT().PublishMachineEvent(ctx, mock.Anything).Return(nil)

	stopped, err := f.service.StopOperation(ctx, operation.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OperationCompleted, stopped.Status)
}

func TestOperationService_StopOperation_NotActive(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()

	endTime := time.Now().Add(-time.Hour)
	operation := &entity.Operation{
		ID:        uuid.New(),
		MachineID: uuid.New(),
		Status:    entity.OperationCompleted,
		StartTime: time.Now().Add(-3 * time.Hour),
		EndTime:   &endTime,
	}

	f.opRepo.EXPECT().FindOperationByID(ctx, operation.ID).Return(operation, nil)

	_, err := f.service.StopOperation(ctx, operation.ID)

	assert.ErrorIs(t, err, domainerrors.ErrOperationNotActive)
}

func TestOperationService_StopOperation_NotFound(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	operationID := uuid.New()

	f.opRepo.EXPECT().FindOperationByID(ctx, operationID).Return(nil, repository.ErrOperationNotFound)

	_, err := f.service.StopOperation(ctx, operationID)

	assert.ErrorIs(t, err, domainerrors.ErrOperationNotFound)
}

func TestOperationService_CancelOperation_AppendsReason(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	machine := operableMachine()
	machine.Status = entity.MachineRunning

	operation := &entity.Operation{
		ID:        uuid.New(),
		MachineID: machine.ID,
		UserID:    uuid.New(),
		Status:    entity.OperationActive,
		StartTime: time.Now().Add(-30 * time.Minute),
		Notes:     "lote 42",
	}

	f.opRepo.EXPECT().FindOperationByID(ctx, operation.ID).Return(operation, nil)
	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.shifts.EXPECT().AccrueProduction(ctx, machine.ID, mock.Anything).Return(nil)

	f.expectTransaction()
	f.opRepo.EXPECT().
		CloseOperation(ctx, operation.ID, entity.OperationCancelled, mock.Anything, "lote 42 | fio rompido").
		Return(nil)
	f.opRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(nil, nil)
	f.machineRepo.EXPECT().UpdateMachineStatus(ctx, machine.ID, entity.MachineStopped).Return(nil)

	f.notifier.EXPECT().DispatchToRoles(ctx, mock.Anything).Return(1, nil)
	f.publisher.EXPECT().PublishMachineEvent(ctx, mock.Anything).Return(nil)

	cancelled, err := f.service.CancelOperation(ctx, operation.ID, "fio rompido")

	require.NoError(t, err)
	assert.Equal(t, entity.OperationCancelled, cancelled.Status)
	assert.Equal(t, "lote 42 | fio rompido", cancelled.Notes)
}

func TestOperationService_SweepStuckOperations(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	machine := operableMachine()
	machine.Status = entity.MachineRunning

	stale := &entity.Operation{
		ID:        uuid.New(),
		MachineID: machine.ID,
		UserID:    uuid.New(),
		Status:    entity.OperationActive,
		StartTime: time.Now().Add(-25 * time.Hour),
	}
	alreadyClosed := &entity.Operation{
		ID:        uuid.New(),
		MachineID: machine.ID,
		UserID:    uuid.New(),
		Status:    entity.OperationActive,
		StartTime: time.Now().Add(-26 * time.Hour),
	}

	f.opRepo.EXPECT().ListActiveOlderThan(ctx, mock.Anything).
		Return([]*entity.Operation{stale, alreadyClosed}, nil)
	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil).Times(2)

	f.factory.EXPECT().NewOperationRepository().Return(f.opRepo).Maybe()
	f.factory.EXPECT().NewMachineRepository().Return(f.machineRepo).Maybe()
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).Times(2)

	f.opRepo.EXPECT().
		CloseOperation(ctx, stale.ID, entity.OperationCancelled, mock.Anything, mock.Anything).
		Return(nil)
	f.opRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(nil, nil)
	f.machineRepo.EXPECT().UpdateMachineStatus(ctx, machine.ID, entity.MachineStopped).Return(nil)

	// Second record was stopped by its operator between the scan and the
	// sweep; the guarded close reports it and the sweeper moves on.
	f.opRepo.EXPECT().
		CloseOperation(ctx, alreadyClosed.ID, entity.OperationCancelled, mock.Anything, mock.Anything).
		Return(repository.ErrOperationNotActive)

	f.notifier.EXPECT().DispatchToRoles(ctx, mock.MatchedBy(func(input usecase.DispatchInput) bool {
		return input.Priority == entity.PriorityHigh
	})).Return(1, nil)
	f.publisher.EXPECT().PublishMachineEvent(ctx, mock.Anything).Return(nil)

	report, err := f.service.SweepStuckOperations(ctx, 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 1, report.Cancelled)
	assert.Equal(t, 0, report.Failed)
}

func TestOperationService_SweepStuckOperations_PartialFailure(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()

	broken := &entity.Operation{
		ID:        uuid.New(),
		MachineID: uuid.New(),
		UserID:    uuid.New(),
		Status:    entity.OperationActive,
		StartTime: time.Now().Add(-48 * time.Hour),
	}

	f.opRepo.EXPECT().ListActiveOlderThan(ctx, mock.Anything).
		Return([]*entity.Operation{broken}, nil)
	f.machineRepo.EXPECT().FindMachineByID(ctx, broken.MachineID).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "machine lookup failed"))

	report, err := f.service.SweepStuckOperations(ctx, 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 0, report.Cancelled)
	assert.Equal(t, 1, report.Failed)
}

func TestOperationService_SweepStuckOperations_NothingStale(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()

	f.opRepo.EXPECT().ListActiveOlderThan(ctx, mock.Anything).Return(nil, nil)

	report, err := f.service.SweepStuckOperations(ctx, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Scanned)
	assert.Equal(t, 0, report.Cancelled)
}

func TestOperationService_GetOperation_NotFound(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	operationID := uuid.New()

	f.opRepo.EXPECT().FindOperationByID(ctx, operationID).Return(nil, repository.ErrOperationNotFound)

	_, err := f.service.GetOperation(ctx, operationID)

	assert.ErrorIs(t, err, domainerrors.ErrOperationNotFound)
}

func TestOperationService_ListActiveOperations(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()

	active := []*entity.Operation{
		{ID: uuid.New(), Status: entity.OperationActive},
		{ID: uuid.New(), Status: entity.OperationActive},
	}
	f.opRepo.EXPECT().ListActive(ctx).Return(active, nil)

	operations, err := f.service.ListActiveOperations(ctx)

	require.NoError(t, err)
	assert.Len(t, operations, 2)
}

func TestOperationService_StartOperation_RetriesTransientStorageFailure(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	machine := operableMachine()
	userID := uuid.New()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.permissions.EXPECT().Check(ctx, userID, machine.ID, entity.CapabilityOperate).Return(true, nil)

	f.factory.EXPECT().NewOperationRepository().Return(f.opRepo).Maybe()
	f.factory.EXPECT().NewMachineRepository().Return(f.machineRepo).Maybe()

	executions := 0
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			executions++
			if executions == 1 {
				return domainerrors.NewDatabaseExecuteError(assert.AnError, "deadlock detected")
			}

			return fn(f.factory)
		}).
		Twice()

	f.opRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, nil)
	f.opRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(nil, nil)
	f.opRepo.EXPECT().CreateOperation(ctx, mock.Anything).Return(nil)
	f.machineRepo.EXPECT().UpdateMachineStatus(ctx, machine.ID, entity.MachineRunning).Return(nil)

	f.notifier.EXPECT().DispatchToRoles(ctx, mock.Anything).Return(1, nil)
	f.publisher.EXPECT().PublishMachineEvent(ctx, mock.Anything).Return(nil)

	operation, err := f.service.StartOperation(ctx, userID, machine.ID, "")

	require.NoError(t, err)
	require.NotNil(t, operation)
	assert.Equal(t, 2, executions)
}

func TestOperationService_StartOperation_ConflictIsNotRetried(t *testing.T) {
	f := createTestOperationService(t)
	ctx := context.Background()
	machine := operableMachine()
	userID := uuid.New()

	f.machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	f.permissions.EXPECT().Check(ctx, userID, machine.ID, entity.CapabilityOperate).Return(true, nil)

	f.factory.EXPECT().NewOperationRepository().Return(f.opRepo).Maybe()

	executions := 0
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			executions++

			return fn(f.factory)
		}).
		Once()

	f.opRepo.EXPECT().FindActiveByUser(ctx, userID).
		Return(&entity.Operation{ID: uuid.New(), UserID: userID, Status: entity.OperationActive}, nil)

	operation, err := f.service.StartOperation(ctx, userID, machine.ID, "")

	require.ErrorIs(t, err, domainerrors.ErrOperatorBusy)
	assert.Nil(t, operation)
	assert.Equal(t, 1, executions)
}
