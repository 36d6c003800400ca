package usecase

import (
	"context"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// MachineInput carries the attributes for registering a machine.
type MachineInput struct {
	Code            string
	Name            string
	ProductionSpeed float64 // Pieces per minute; must not be negative.
}

// MachineUsecase is the machine registry.
type MachineUsecase interface {
	// RegisterMachine creates a new machine in STOPPED status.
	RegisterMachine(ctx context.Context, input MachineInput) (*entity.Machine, error)

	// GetMachine retrieves one machine.
	GetMachine(ctx context.Context, machineID uuid.UUID) (*entity.Machine, error)

	// ListMachines retrieves machines, optionally only the active ones.
	ListMachines(ctx context.Context, onlyActive bool) ([]*entity.Machine, error)

	// SetMaintenanceStatus moves a machine into or out of MAINTENANCE and
	// notifies the management roles. RUNNING is owned by the operation
	// lifecycle and is rejected here.
	SetMaintenanceStatus(ctx context.Context, machineID uuid.UUID, status entity.MachineStatus) (*entity.Machine, error)

	// UpdateProductionSpeed changes the nominal speed in pieces per minute.
	UpdateProductionSpeed(ctx context.Context, machineID uuid.UUID, speed float64) (*entity.Machine, error)

	// DeactivateMachine soft-deletes a machine.
	DeactivateMachine(ctx context.Context, machineID uuid.UUID) error

	// FloorLabel renders the QR label PNG for the machine.
	FloorLabel(ctx context.Context, machineID uuid.UUID) ([]byte, error)
}
