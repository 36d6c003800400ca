package impl

import (
	"context"
	"log/slog"
	"time"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	"zara/internal/errors"
	"zara/internal/usecase"

	"github.com/google/uuid"
)

type shiftService struct {
	machineRepo   repository.MachineRepository
	operationRepo repository.OperationRepository
	shiftRepo     repository.ShiftRepository
	logger        *slog.Logger
}

// NewShiftService creates a new shift production aggregator instance.
func NewShiftService(
	machineRepo repository.MachineRepository,
	operationRepo repository.OperationRepository,
	shiftRepo repository.ShiftRepository,
	logger *slog.Logger,
) usecase.ShiftUsecase {
	return &shiftService{
		machineRepo:   machineRepo,
		operationRepo: operationRepo,
		shiftRepo:     shiftRepo,
		logger:        logger,
	}
}

// AccrueProduction recomputes the production accrued by the machine's ACTIVE
// operation inside the shift window containing now. The total is always
// derived from the operation start time, never incremented, so repeated calls
// cannot double-count; the storage write raises and never lowers.
func (s *shiftService) AccrueProduction(ctx context.Context, machineID uuid.UUID, now time.Time) error {
	machine, err := s.machineRepo.FindMachineByID(ctx, machineID)
	if err != nil {
		if errors.Is(err, repository.ErrMachineNotFound) {
			return domainerrors.ErrMachineNotFound
		}

		return errors.Wrap(err, "failed to load machine for accrual")
	}

	// No accrual while the machine is not running.
	if machine.Status != entity.MachineRunning || !machine.IsActive {
		return nil
	}

	operation, err := s.operationRepo.FindActiveByMachine(ctx, machineID)
	if err != nil {
		return errors.Wrap(err, "failed to load active operation for accrual")
	}
	if operation == nil {
		// The operation may have been stopped between the status read and
		// here; a stale read accrues nothing rather than a negative delta.
		return nil
	}

	window := entity.ShiftWindowAt(now)
	total, efficiency := accruedProduction(machine, operation, window, now)
	if total <= 0 {
		return nil
	}

	if err := s.shiftRepo.RaiseProduction(ctx, machineID, window, total, efficiency); err != nil {
		return errors.Wrap(err, "failed to raise shift production")
	}

	return nil
}

// AccrueAllRunning accrues production for every ACTIVE operation. Failures
// are logged per machine and do not stop the pass.
func (s *shiftService) AccrueAllRunning(ctx context.Context, now time.Time) error {
	operations, err := s.operationRepo.ListActive(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list active operations for accrual")
	}

	for _, operation := range operations {
		if err := s.AccrueProduction(ctx, operation.MachineID, now); err != nil {
			s.logger.Error("Shift accrual failed for machine",
				slog.String("machine_id", operation.MachineID.String()),
				slog.String("operation_id", operation.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// GetShiftData retrieves one aggregate by (machine, date, type).
func (s *shiftService) GetShiftData(ctx context.Context, machineID uuid.UUID, date time.Time, shiftType entity.ShiftType) (*entity.ShiftData, error) {
	if !shiftType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("turno desconhecido: " + string(shiftType))
	}

	data, err := s.shiftRepo.FindShiftData(ctx, machineID, date, shiftType)
	if err != nil {
		if errors.Is(err, repository.ErrShiftDataNotFound) {
			return nil, domainerrors.ErrShiftDataNotFound
		}

		return nil, errors.Wrap(err, "failed to find shift data")
	}

	return data, nil
}

// ListShiftData retrieves a machine's aggregates, newest first.
func (s *shiftService) ListShiftData(ctx context.Context, machineID uuid.UUID, limit, offset int) ([]*entity.ShiftData, error) {
	data, err := s.shiftRepo.ListShiftDataByMachine(ctx, machineID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shift data")
	}

	return data, nil
}

// accruedProduction computes whole pieces produced by the operation inside
// the window up to now, and the efficiency against nominal capacity for the
// elapsed part of the window. Bounds are clamped so a clock or racing stop
// can never produce a negative result.
func accruedProduction(machine *entity.Machine, operation *entity.Operation, window entity.ShiftWindow, now time.Time) (int, float64) {
	start := operation.StartTime
	if window.Start.After(start) {
		start = window.Start
	}

	end := now
	if end.After(window.End) {
		end = window.End
	}
	if !end.After(start) {
		return 0, 0
	}

	minutes := int(end.Sub(start).Minutes())
	pieces := int(float64(minutes) * machine.ProductionSpeed)
	if pieces < 0 {
		return 0, 0
	}

	elapsedWindow := end.Sub(window.Start).Minutes()
	capacity := machine.ProductionSpeed * elapsedWindow

	efficiency := 0.0
	if capacity > 0 {
		efficiency = float64(pieces) / capacity
		if efficiency > 1 {
			efficiency = 1
		}
	}

	return pieces, efficiency
}
