package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	"zara/internal/domain/service"
	"zara/internal/errors"
	"zara/internal/usecase"

	"github.com/google/uuid"
)

type machineService struct {
	machineRepo repository.MachineRepository
	notifier    usecase.NotificationUsecase
	publisher   service.EventPublisher
	labels      service.LabelService
	logger      *slog.Logger
}

// NewMachineService creates a new machine registry instance.
func NewMachineService(
	machineRepo repository.MachineRepository,
	notifier usecase.NotificationUsecase,
	publisher service.EventPublisher,
	labels service.LabelService,
	logger *slog.Logger,
) usecase.MachineUsecase {
	return &machineService{
		machineRepo: machineRepo,
		notifier:    notifier,
		publisher:   publisher,
		labels:      labels,
		logger:      logger,
	}
}

// RegisterMachine creates a new machine in STOPPED status.
func (s *machineService) RegisterMachine(ctx context.Context, input usecase.MachineInput) (*entity.Machine, error) {
	if input.Code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("código da máquina é obrigatório")
	}
	if input.ProductionSpeed < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("velocidade de produção não pode ser negativa")
	}

	now := time.Now()
	machine := &entity.Machine{
		ID:              uuid.New(),
		Code:            input.Code,
		Name:            input.Name,
		Status:          entity.MachineStopped,
		ProductionSpeed: input.ProductionSpeed,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.machineRepo.CreateMachine(ctx, machine); err != nil {
		if errors.Is(err, repository.ErrMachineCodeTaken) {
			return nil, domainerrors.ErrMachineCodeTaken
		}

		return nil, errors.Wrap(err, "failed to create machine")
	}

	return machine, nil
}

// GetMachine retrieves one machine.
func (s *machineService) GetMachine(ctx context.Context, machineID uuid.UUID) (*entity.Machine, error) {
	return s.findMachine(ctx, machineID)
}

// ListMachines retrieves machines, optionally only the active ones.
func (s *machineService) ListMachines(ctx context.Context, onlyActive bool) ([]*entity.Machine, error) {
	machines, err := s.machineRepo.ListMachines(ctx, onlyActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list machines")
	}

	return machines, nil
}

// SetMaintenanceStatus moves a machine into or out of MAINTENANCE.
// RUNNING is derived from the operation lifecycle and rejected here; a
// machine with an open operation must be stopped first.
func (s *machineService) SetMaintenanceStatus(ctx context.Context, machineID uuid.UUID, status entity.MachineStatus) (*entity.Machine, error) {
	if status == entity.MachineRunning {
		return nil, domainerrors.ErrStatusOwnedByLifecycle
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status desconhecido: " + string(status))
	}

	machine, err := s.findMachine(ctx, machineID)
	if err != nil {
		return nil, err
	}
	if machine.Status == status {
		return machine, nil
	}
	if machine.Status == entity.MachineRunning {
		return nil, domainerrors.ErrMachineUnavailable.WithDetails("encerre a operação ativa antes de alterar o status")
	}

	previous := machine.Status
	if err := s.machineRepo.UpdateMachineStatus(ctx, machineID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update machine status")
	}
	machine.Status = status

	s.announceStatusChange(ctx, machine, previous, status)

	return machine, nil
}

// UpdateProductionSpeed changes the nominal speed in pieces per minute.
func (s *machineService) UpdateProductionSpeed(ctx context.Context, machineID uuid.UUID, speed float64) (*entity.Machine, error) {
	if speed < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("velocidade de produção não pode ser negativa")
	}

	machine, err := s.findMachine(ctx, machineID)
	if err != nil {
		return nil, err
	}

	if err := s.machineRepo.UpdateProductionSpeed(ctx, machineID, speed); err != nil {
		return nil, errors.Wrap(err, "failed to update production speed")
	}
	machine.ProductionSpeed = speed

	return machine, nil
}

// DeactivateMachine soft-deletes a machine. A machine with an open operation
// cannot be deactivated.
func (s *machineService) DeactivateMachine(ctx context.Context, machineID uuid.UUID) error {
	machine, err := s.findMachine(ctx, machineID)
	if err != nil {
		return err
	}
	if machine.Status == entity.MachineRunning {
		return domainerrors.ErrMachineUnavailable.WithDetails("encerre a operação ativa antes de desativar a máquina")
	}

	if err := s.machineRepo.DeactivateMachine(ctx, machineID); err != nil {
		return errors.Wrap(err, "failed to deactivate machine")
	}

	return nil
}

// FloorLabel renders the QR label PNG for the machine.
func (s *machineService) FloorLabel(ctx context.Context, machineID uuid.UUID) ([]byte, error) {
	machine, err := s.findMachine(ctx, machineID)
	if err != nil {
		return nil, err
	}

	label, err := s.labels.GenerateMachineLabel(machine.ID, machine.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate machine label")
	}

	return label, nil
}

func (s *machineService) findMachine(ctx context.Context, machineID uuid.UUID) (*entity.Machine, error) {
	machine, err := s.machineRepo.FindMachineByID(ctx, machineID)
	if err != nil {
		if errors.Is(err, repository.ErrMachineNotFound) {
			return nil, domainerrors.ErrMachineNotFound
		}

		return nil, errors.Wrap(err, "failed to find machine")
	}

	return machine, nil
}

// announceStatusChange fans out the status change to management roles and the
// push channel. Best effort on both legs.
func (s *machineService) announceStatusChange(ctx context.Context, machine *entity.Machine, previous, next entity.MachineStatus) {
	priority := entity.PriorityMedium
	if next == entity.MachineMaintenance {
		priority = entity.PriorityHigh
	}

	_, err := s.notifier.DispatchToRoles(ctx, usecase.DispatchInput{
		Title:    fmt.Sprintf("Máquina %s: %s", machine.Code, next),
		Message:  fmt.Sprintf("Máquina %s mudou de %s para %s", machine.Code, previous, next),
		Priority: priority,
		Metadata: entity.MachineStatusMetadata{
			MachineID:      machine.ID,
			MachineCode:    machine.Code,
			PreviousStatus: previous,
			NewStatus:      next,
		},
	})
	if err != nil {
		s.logger.Error("Failed to dispatch machine status notification",
			slog.String("machine_id", machine.ID.String()),
			slog.Any("error", err),
		)
	}

	if s.publisher == nil {
		return
	}
	event := &service.MachineEvent{
		Type:           service.EventMachineStatus,
		MachineID:      machine.ID.String(),
		MachineCode:    machine.Code,
		PreviousStatus: previous.String(),
		NewStatus:      next.String(),
		OccurredAt:     time.Now(),
	}
	if err := s.publisher.PublishMachineEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish machine status event",
			slog.String("machine_id", machine.ID.String()),
			slog.Any("error", err),
		)
	}
}
