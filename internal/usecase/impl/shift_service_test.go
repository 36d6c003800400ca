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
	"zara/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestShiftService(t *testing.T) (
	usecase.ShiftUsecase,
	*mockRepo.MockMachineRepository,
	*mockRepo.MockOperationRepository,
	*mockRepo.MockShiftRepository,
) {
	machineRepo := mockRepo.NewMockMachineRepository(t)
	operationRepo := mockRepo.NewMockOperationRepository(t)
	shiftRepo := mockRepo.NewMockShiftRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewShiftService(machineRepo, operationRepo, shiftRepo, logger)

	return service, machineRepo, operationRepo, shiftRepo
}

func runningMachine(speed float64) *entity.Machine {
	return &entity.Machine{
		ID:              uuid.New(),
		Code:            "TEAR-02",
		Status:          entity.MachineRunning,
		ProductionSpeed: speed,
		IsActive:        true,
	}
}

func TestShiftService_AccrueProduction_WholeMinutesOnly(t *testing.T) {
	service, machineRepo, operationRepo, shiftRepo := createTestShiftService(t)
	ctx := context.Background()

	machine := runningMachine(1.0)
	// 09:00 on a weekday, well inside the morning window.
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	operation := &entity.Operation{
		ID:        uuid.New(),
		MachineID: machine.ID,
		Status:    entity.OperationActive,
		// Three accrual ticks of 65 s each have passed: 195 s, so 3 whole
		// minutes regardless of how the ticks were sliced.
		StartTime: now.Add(-195 * time.Second),
	}

	machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	operationRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(operation, nil)
	shiftRepo.EXPECT().
		RaiseProduction(ctx, machine.ID, mock.Anything, 3, mock.Anything).
		Return(nil)

	err := service.AccrueProduction(ctx, machine.ID, now)

	require.NoError(t, err)
}

func TestShiftService_AccrueProduction_RepeatedCallsSameTotal(t *testing.T) {
	service, machineRepo, operationRepo, shiftRepo := createTestShiftService(t)
	ctx := context.Background()

	machine := runningMachine(2.0)
	now := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)
	operation := &entity.Operation{
		ID:        uuid.New(),
		MachineID: machine.ID,
		Status:    entity.OperationActive,
		StartTime: now.Add(-10 * time.Minute),
	}

	machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil).Times(2)
	operationRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(operation, nil).Times(2)
	// The total is recomputed from the start time, not incremented, so both
	// calls push the same value.
	shiftRepo.EXPECT().
		RaiseProduction(ctx, machine.ID, mock.Anything, 20, mock.Anything).
		Return(nil).Times(2)

	require.NoError(t, service.AccrueProduction(ctx, machine.ID, now))
	require.NoError(t, service.AccrueProduction(ctx, machine.ID, now))
}

func TestShiftService_AccrueProduction_ClampsToWindowStart(t *testing.T) {
	service, machineRepo, operationRepo, shiftRepo := createTestShiftService(t)
	ctx := context.Background()

	machine := runningMachine(1.0)
	// The operation crossed the 07:00 boundary; only the 30 minutes inside
	// the morning window count towards the morning aggregate.
	now := time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)
	operation := &entity.Operation{
		ID:        uuid.New(),
		MachineID: machine.ID,
		Status:    entity.OperationActive,
		StartTime: time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC),
	}

	machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	operationRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(operation, nil)
	shiftRepo.EXPECT().
		RaiseProduction(ctx, machine.ID, mock.MatchedBy(func(window entity.ShiftWindow) bool {
			return window.Type == entity.ShiftMorning
		}), 30, mock.Anything).
		Return(nil)

	err := service.AccrueProduction(ctx, machine.ID, now)

	require.NoError(t, err)
}

func TestShiftService_AccrueProduction_FullEfficiency(t *testing.T) {
	service, machineRepo, operationRepo, shiftRepo := createTestShiftService(t)
	ctx := context.Background()

	machine := runningMachine(2.0)
	// Operation started exactly at the window start and ran the whole
	// elapsed window, so efficiency is 1.0.
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	operation := &entity.Operation{
		ID:        uuid.New(),
		MachineID: machine.ID,
		Status:    entity.OperationActive,
		StartTime: time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC),
	}

	machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	operationRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(operation, nil)
	shiftRepo.EXPECT().
		RaiseProduction(ctx, machine.ID, mock.Anything, 120, 1.0).
		Return(nil)

	err := service.AccrueProduction(ctx, machine.ID, now)

	require.NoError(t, err)
}

func TestShiftService_AccrueProduction_MachineNotRunning(t *testing.T) {
	service, machineRepo, _, _ := createTestShiftService(t)
	ctx := context.Background()

	machine := runningMachine(1.0)
	machine.Status = entity.MachineStopped

	machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)

	err := service.AccrueProduction(ctx, machine.ID, time.Now())

	require.NoError(t, err)
}

func TestShiftService_AccrueProduction_NoActiveOperation(t *testing.T) {
	service, machineRepo, operationRepo, _ := createTestShiftService(t)
	ctx := context.Background()

	machine := runningMachine(1.0)

	machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	operationRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(nil, nil)

	err := service.AccrueProduction(ctx, machine.ID, time.Now())

	require.NoError(t, err)
}

func TestShiftService_AccrueProduction_SubMinuteAccruesNothing(t *testing.T) {
	service, machineRepo, operationRepo, _ := createTestShiftService(t)
	ctx := context.Background()

	machine := runningMachine(5.0)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	operation := &entity.Operation{
		ID:        uuid.New(),
		MachineID: machine.ID,
		Status:    entity.OperationActive,
		StartTime: now.Add(-45 * time.Second),
	}

	machineRepo.EXPECT().FindMachineByID(ctx, machine.ID).Return(machine, nil)
	operationRepo.EXPECT().FindActiveByMachine(ctx, machine.ID).Return(operation, nil)

	err := service.AccrueProduction(ctx, machine.ID, now)

	require.NoError(t, err)
}

func TestShiftService_AccrueAllRunning_ContinuesOnFailure(t *testing.T) {
	service, machineRepo, operationRepo, shiftRepo := createTestShiftService(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	healthy := runningMachine(1.0)
	broken := runningMachine(1.0)

	operations := []*entity.Operation{
		{ID: uuid.New(), MachineID: broken.ID, Status: entity.OperationActive, StartTime: now.Add(-time.Hour)},
		{ID: uuid.New(), MachineID: healthy.ID, Status: entity.OperationActive, StartTime: now.Add(-time.Hour)},
	}

	operationRepo.EXPECT().ListActive(ctx).Return(operations, nil)
	machineRepo.EXPECT().FindMachineByID(ctx, broken.ID).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "machine lookup failed"))
	machineRepo.EXPECT().FindMachineByID(ctx, healthy.ID).Return(healthy, nil)
	operationRepo.EXPECT().FindActiveByMachine(ctx, healthy.ID).Return(operations[1], nil)
	shiftRepo.EXPECT().
		RaiseProduction(ctx, healthy.ID, mock.Anything, 60, mock.Anything).
		Return(nil)

	err := service.AccrueAllRunning(ctx, now)

	require.NoError(t, err)
}

func TestShiftService_GetShiftData(t *testing.T) {
	service, _, _, shiftRepo := createTestShiftService(t)
	ctx := context.Background()

	machineID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	expected := &entity.ShiftData{
		ID:              uuid.New(),
		MachineID:       machineID,
		ShiftDate:       date,
		ShiftType:       entity.ShiftMorning,
		TotalProduction: 840,
		Efficiency:      0.7,
	}

	shiftRepo.EXPECT().FindShiftData(ctx, machineID, date, entity.ShiftMorning).Return(expected, nil)

	data, err := service.GetShiftData(ctx, machineID, date, entity.ShiftMorning)

	require.NoError(t, err)
	assert.Equal(t, 840, data.TotalProduction)
}

func TestShiftService_GetShiftData_NotFound(t *testing.T) {
	service, _, _, shiftRepo := createTestShiftService(t)
	ctx := context.Background()
	machineID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	shiftRepo.EXPECT().FindShiftData(ctx, machineID, date, entity.ShiftNight).
		Return(nil, repository.ErrShiftDataNotFound)

	_, err := service.GetShiftData(ctx, machineID, date, entity.ShiftNight)

	assert.ErrorIs(t, err, domainerrors.ErrShiftDataNotFound)
}

func TestShiftService_GetShiftData_InvalidType(t *testing.T) {
	service, _, _, _ := createTestShiftService(t)
	ctx := context.Background()

	_, err := service.GetShiftData(ctx, uuid.New(), time.Now(), entity.ShiftType("AFTERNOON"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
