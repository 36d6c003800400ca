// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MachineStatus represents the operational state of a machine on the floor.
type MachineStatus string

const (
	// MachineStopped indicates the machine is idle and available.
	MachineStopped MachineStatus = "STOPPED"
	// MachineRunning indicates an operator is currently running the machine.
	MachineRunning MachineStatus = "RUNNING"
	// MachineMaintenance indicates the machine is under maintenance and cannot be operated.
	MachineMaintenance MachineStatus = "MAINTENANCE"
)

// String returns the string representation of the MachineStatus.
func (s MachineStatus) String() string {
	return string(s)
}

// IsValid checks if the MachineStatus is a valid value.
func (s MachineStatus) IsValid() bool {
	switch s {
	case MachineStopped, MachineRunning, MachineMaintenance:
		return true
	default:
		return false
	}
}

// Machine represents a production machine on the factory floor.
type Machine struct {
	ID              uuid.UUID     `json:"id"`               // The Global Unique Identifier (GUID) for the machine.
	Code            string        `json:"code"`             // The short floor code printed on the machine label (e.g., "TEAR-01").
	Name            string        `json:"name"`             // The human-readable machine name.
	Status          MachineStatus `json:"status"`           // The current operational status.
	ProductionSpeed float64       `json:"production_speed"` // Nominal production speed in pieces per minute, never negative.
	IsActive        bool          `json:"is_active"`        // Soft-deactivation flag; machines are never hard-deleted.
	CreatedAt       time.Time     `json:"created_at"`       // Timestamp of when this machine was registered.
	UpdatedAt       time.Time     `json:"updated_at"`       // Timestamp of the last modification.
}

// Operable reports whether the machine can accept a new operation.
func (m *Machine) Operable() bool {
	return m.IsActive && m.Status != MachineMaintenance
}
