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
	"zara/internal/util"

	"github.com/google/uuid"
)

// defaultStuckThreshold is the sweep cutoff when no max age is supplied.
const defaultStuckThreshold = 24 * time.Hour

type operationService struct {
	txManager     repository.TransactionManager
	machineRepo   repository.MachineRepository
	operationRepo repository.OperationRepository
	permissions   usecase.PermissionUsecase
	shifts        usecase.ShiftUsecase
	notifier      usecase.NotificationUsecase
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// NewOperationService creates a new operation lifecycle manager instance.
func NewOperationService(
	txManager repository.TransactionManager,
	machineRepo repository.MachineRepository,
	operationRepo repository.OperationRepository,
	permissions usecase.PermissionUsecase,
	shifts usecase.ShiftUsecase,
	notifier usecase.NotificationUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OperationUsecase {
	return &operationService{
		txManager:     txManager,
		machineRepo:   machineRepo,
		operationRepo: operationRepo,
		permissions:   permissions,
		shifts:        shifts,
		notifier:      notifier,
		publisher:     publisher,
		logger:        logger,
	}
}

// StartOperation opens an ACTIVE operation after the permission gate passes
// and both at-most-one-ACTIVE invariants hold. The conflict checks and the
// insert run in one transaction; the partial unique indexes make concurrent
// starts lose the race atomically rather than corrupt the invariant.
func (s *operationService) StartOperation(ctx context.Context, userID, machineID uuid.UUID, notes string) (*entity.Operation, error) {
	machine, err := s.machineRepo.FindMachineByID(ctx, machineID)
	if err != nil {
		if errors.Is(err, repository.ErrMachineNotFound) {
			return nil, domainerrors.ErrMachineNotFound
		}

		return nil, errors.Wrap(err, "failed to load machine for start")
	}
	if !machine.Operable() {
		return nil, domainerrors.ErrMachineUnavailable
	}

	allowed, err := s.permissions.Check(ctx, userID, machineID, entity.CapabilityOperate)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domainerrors.ErrPermissionDenied
	}

	now := time.Now()
	operation := &entity.Operation{
		ID:        uuid.New(),
		MachineID: machineID,
		UserID:    userID,
		Status:    entity.OperationActive,
		StartTime: now,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = withSingleRetry(ctx, func() error {
		return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			operations := f.NewOperationRepository()

			active, err := operations.FindActiveByUser(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to check user's active operation")
			}
			if active != nil {
				return domainerrors.ErrOperatorBusy
			}

			active, err = operations.FindActiveByMachine(ctx, machineID)
			if err != nil {
				return errors.Wrap(err, "failed to check machine's active operation")
			}
			if active != nil {
				return domainerrors.ErrMachineBusy
			}

			if err := operations.CreateOperation(ctx, operation); err != nil {
				if errors.Is(err, repository.ErrActiveOperationExists) {
					// A concurrent start won the race between the check and
					// the insert; the unique index rejected ours.
					return domainerrors.ErrMachineBusy
				}

				return errors.Wrap(err, "failed to create operation")
			}

			return errors.Wrap(
				f.NewMachineRepository().UpdateMachineStatus(ctx, machineID, entity.MachineRunning),
				"failed to set machine running",
			)
		})
	})
	if err != nil {
		return nil, err
	}

	s.announce(ctx, operation, machine, entity.NotificationOperationStarted, entity.PriorityMedium, "")

	return operation, nil
}

// StopOperation completes an ACTIVE operation and flips the machine back to
// STOPPED. The final shift accrual runs first, while the operation is still
// ACTIVE, so no produced minute is lost.
func (s *operationService) StopOperation(ctx context.Context, operationID uuid.UUID) (*entity.Operation, error) {
	return s.closeOperation(ctx, operationID, entity.OperationCompleted, "")
}

// CancelOperation cancels an ACTIVE operation, recording the reason.
func (s *operationService) CancelOperation(ctx context.Context, operationID uuid.UUID, reason string) (*entity.Operation, error) {
	return s.closeOperation(ctx, operationID, entity.OperationCancelled, reason)
}

// SweepStuckOperations cancels ACTIVE operations older than maxAge. Each
// record is handled independently: a failure is logged and skipped so the
// rest of the sweep continues. Already-closed operations are untouched,
// which makes back-to-back runs produce the same final state.
func (s *operationService) SweepStuckOperations(ctx context.Context, maxAge time.Duration) (*usecase.SweepReport, error) {
	if maxAge <= 0 {
		maxAge = defaultStuckThreshold
	}

	cutoff := time.Now().Add(-maxAge)
	stale, err := s.operationRepo.ListActiveOlderThan(ctx, cutoff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stuck operations")
	}

	report := &usecase.SweepReport{Scanned: len(stale)}
	for _, operation := range stale {
		cancelled, err := s.cancelStuck(ctx, operation, maxAge)
		if err != nil {
			report.Failed++
			s.logger.Error("Failed to sweep stuck operation",
				slog.String("operation_id", operation.ID.String()),
				slog.String("machine_id", operation.MachineID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if cancelled {
			report.Cancelled++
		}
	}

	return report, nil
}

// GetOperation retrieves one operation.
func (s *operationService) GetOperation(ctx context.Context, operationID uuid.UUID) (*entity.Operation, error) {
	operation, err := s.operationRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		if errors.Is(err, repository.ErrOperationNotFound) {
			return nil, domainerrors.ErrOperationNotFound
		}

		return nil, errors.Wrap(err, "failed to find operation")
	}

	return operation, nil
}

// ListActiveOperations retrieves all currently ACTIVE operations.
func (s *operationService) ListActiveOperations(ctx context.Context) ([]*entity.Operation, error) {
	operations, err := s.operationRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active operations")
	}

	return operations, nil
}

// closeOperation is the shared ACTIVE → terminal transition for stop and
// manual cancel.
func (s *operationService) closeOperation(ctx context.Context, operationID uuid.UUID, status entity.OperationStatus, reason string) (*entity.Operation, error) {
	operation, err := s.operationRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		if errors.Is(err, repository.ErrOperationNotFound) {
			return nil, domainerrors.ErrOperationNotFound
		}

		return nil, errors.Wrap(err, "failed to load operation")
	}
	if operation.Status != entity.OperationActive {
		return nil, domainerrors.ErrOperationNotActive
	}

	machine, err := s.machineRepo.FindMachineByID(ctx, operation.MachineID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load machine for close")
	}

	// Final accrual while the operation still counts. A failure here must
	// not block the stop; the totals are raise-only and a later pass can
	// still catch up within the same window.
	now := time.Now()
	if err := s.shifts.AccrueProduction(ctx, operation.MachineID, now); err != nil {
		s.logger.Error("Final shift accrual failed on close",
			slog.String("operation_id", operation.ID.String()),
			slog.Any("error", err),
		)
	}

	notes := operation.Notes
	if reason != "" {
		notes = appendNote(notes, reason)
	}

	err = withSingleRetry(ctx, func() error {
		return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			operations := f.NewOperationRepository()

			if err := operations.CloseOperation(ctx, operationID, status, now, notes); err != nil {
				if errors.Is(err, repository.ErrOperationNotActive) {
					return domainerrors.ErrOperationNotActive
				}

				return errors.Wrap(err, "failed to close operation")
			}

			// The per-machine invariant means no other ACTIVE operation can
			// exist; still, only flip to STOPPED when that holds.
			remaining, err := operations.FindActiveByMachine(ctx, operation.MachineID)
			if err != nil {
				return errors.Wrap(err, "failed to re-check machine operations")
			}
			if remaining == nil {
				if err := f.NewMachineRepository().UpdateMachineStatus(ctx, operation.MachineID, entity.MachineStopped); err != nil {
					return errors.Wrap(err, "failed to set machine stopped")
				}
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	operation.Status = status
	operation.EndTime = &now
	operation.Notes = notes

	notificationType := entity.NotificationOperationStopped
	if status == entity.OperationCancelled {
		notificationType = entity.NotificationOperationCancelled
	}
	s.announce(ctx, operation, machine, notificationType, entity.PriorityMedium, reason)

	return operation, nil
}

// cancelStuck transitions a single stale operation. Returns false with a nil
// error when another writer closed the operation first.
func (s *operationService) cancelStuck(ctx context.Context, operation *entity.Operation, maxAge time.Duration) (bool, error) {
	machine, err := s.machineRepo.FindMachineByID(ctx, operation.MachineID)
	if err != nil {
		return false, errors.Wrap(err, "failed to load machine for sweep")
	}

	now := time.Now()
	note := appendNote(operation.Notes, fmt.Sprintf(
		"Cancelada automaticamente: operação ativa há mais de %s", util.FormatDuration(maxAge),
	))

	lost := false
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		operations := f.NewOperationRepository()

		if err := operations.CloseOperation(ctx, operation.ID, entity.OperationCancelled, now, note); err != nil {
			if errors.Is(err, repository.ErrOperationNotActive) {
				// Someone stopped or cancelled it since the scan; nothing to do.
				lost = true

				return nil
			}

			return errors.Wrap(err, "failed to cancel stuck operation")
		}

		remaining, err := operations.FindActiveByMachine(ctx, operation.MachineID)
		if err != nil {
			return errors.Wrap(err, "failed to re-check machine operations")
		}
		if remaining == nil {
			if err := f.NewMachineRepository().UpdateMachineStatus(ctx, operation.MachineID, entity.MachineStopped); err != nil {
				return errors.Wrap(err, "failed to set machine stopped")
			}
		}

		return nil
	})
	if err != nil {
		return false, err
	}
	if lost {
		return false, nil
	}

	operation.Status = entity.OperationCancelled
	operation.EndTime = &now
	s.announce(ctx, operation, machine, entity.NotificationOperationStuck, entity.PriorityHigh,
		"operação abandonada cancelada pela varredura")

	return true, nil
}

// announce fans a lifecycle transition out to the management roles and the
// push channel. Both legs are best effort; failures are logged only.
func (s *operationService) announce(ctx context.Context, operation *entity.Operation, machine *entity.Machine, notificationType entity.NotificationType, priority entity.NotificationPriority, reason string) {
	now := time.Now()
	metadata := entity.OperationMetadata{
		Type:        notificationType,
		OperationID: operation.ID,
		MachineID:   machine.ID,
		MachineCode: machine.Code,
		OperatorID:  operation.UserID,
		StartedAt:   operation.StartTime,
		Reason:      reason,
	}
	if operation.EndTime != nil {
		metadata.Duration = util.FormatDuration(operation.Duration(now))
	}

	title, message := operationNotificationText(notificationType, machine.Code, metadata.Duration)
	if _, err := s.notifier.DispatchToRoles(ctx, usecase.DispatchInput{
		Title:    title,
		Message:  message,
		Priority: priority,
		Metadata: metadata,
	}); err != nil {
		s.logger.Error("Failed to dispatch operation notification",
			slog.String("operation_id", operation.ID.String()),
			slog.Any("error", err),
		)
	}

	if s.publisher == nil {
		return
	}
	event := &service.MachineEvent{
		Type:        eventTypeFor(notificationType),
		MachineID:   machine.ID.String(),
		MachineCode: machine.Code,
		OperationID: operation.ID.String(),
		OperatorID:  operation.UserID.String(),
		NewStatus:   machineStatusFor(notificationType).String(),
		OccurredAt:  now,
	}
	if err := s.publisher.PublishMachineEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish operation event",
			slog.String("operation_id", operation.ID.String()),
			slog.Any("error", err),
		)
	}
}

func operationNotificationText(notificationType entity.NotificationType, machineCode, duration string) (title, message string) {
	switch notificationType {
	case entity.NotificationOperationStarted:
		return fmt.Sprintf("Operação iniciada em %s", machineCode),
			fmt.Sprintf("Máquina %s iniciou operação", machineCode)
	case entity.NotificationOperationStopped:
		return fmt.Sprintf("Operação finalizada em %s", machineCode),
			fmt.Sprintf("Máquina %s finalizou operação após %s", machineCode, duration)
	case entity.NotificationOperationCancelled:
		return fmt.Sprintf("Operação cancelada em %s", machineCode),
			fmt.Sprintf("Máquina %s teve operação cancelada após %s", machineCode, duration)
	case entity.NotificationOperationStuck:
		return fmt.Sprintf("Operação travada em %s", machineCode),
			fmt.Sprintf("Máquina %s teve operação abandonada cancelada automaticamente", machineCode)
	default:
		return string(notificationType), string(notificationType)
	}
}

func eventTypeFor(notificationType entity.NotificationType) string {
	switch notificationType {
	case entity.NotificationOperationStarted:
		return service.EventOperationStarted
	case entity.NotificationOperationStopped:
		return service.EventOperationStopped
	case entity.NotificationOperationCancelled:
		return service.EventOperationCancelled
	case entity.NotificationOperationStuck:
		return service.EventOperationStuck
	default:
		return service.EventMachineStatus
	}
}

func machineStatusFor(notificationType entity.NotificationType) entity.MachineStatus {
	if notificationType == entity.NotificationOperationStarted {
		return entity.MachineRunning
	}

	return entity.MachineStopped
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}

	return existing + " | " + note
}
