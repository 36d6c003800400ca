// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for machine persistence.
var (
	// ErrMachineNotFound is returned when a machine is not found.
	ErrMachineNotFound = errors.New("machine not found")
	// ErrMachineCodeTaken is returned when creating a machine with a code already in use.
	ErrMachineCodeTaken = errors.New("machine code already taken")
)

// MachineRepository defines the interface for machine-related database operations.
type MachineRepository interface {
	// CreateMachine persists a new machine.
	CreateMachine(ctx context.Context, machine *entity.Machine) error

	// FindMachineByID retrieves a machine by its unique ID.
	FindMachineByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error)

	// FindMachineByCode retrieves a machine by its floor code.
	FindMachineByCode(ctx context.Context, code string) (*entity.Machine, error)

	// ListMachines retrieves machines, optionally filtering out deactivated ones.
	ListMachines(ctx context.Context, onlyActive bool) ([]*entity.Machine, error)

	// UpdateMachineStatus sets the machine status.
	UpdateMachineStatus(ctx context.Context, id uuid.UUID, status entity.MachineStatus) error

	// UpdateProductionSpeed sets the nominal production speed in pieces per minute.
	UpdateProductionSpeed(ctx context.Context, id uuid.UUID, speed float64) error

	// DeactivateMachine soft-deletes a machine; records are never hard-deleted.
	DeactivateMachine(ctx context.Context, id uuid.UUID) error
}
