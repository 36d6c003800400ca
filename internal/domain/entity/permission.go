package entity

import (
	"time"

	"github.com/google/uuid"
)

// Capability identifies one machine-level permission flag.
type Capability string

const (
	// CapabilityView allows reading machine state and shift data.
	CapabilityView Capability = "view"
	// CapabilityOperate allows starting and stopping operations.
	CapabilityOperate Capability = "operate"
	// CapabilityMaintain allows flipping the machine into and out of maintenance.
	CapabilityMaintain Capability = "maintain"
	// CapabilityEdit allows editing machine attributes such as production speed.
	CapabilityEdit Capability = "edit"
)

// IsValid checks if the Capability is a valid value.
func (c Capability) IsValid() bool {
	switch c {
	case CapabilityView, CapabilityOperate, CapabilityMaintain, CapabilityEdit:
		return true
	default:
		return false
	}
}

// MachinePermission joins a user to a machine with capability flags.
// Unique per (UserID, MachineID). Absence of a row means every capability
// is denied; there is no implicit grant.
type MachinePermission struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the permission row.
	UserID      uuid.UUID `json:"user_id"`      // The user the capabilities are granted to.
	MachineID   uuid.UUID `json:"machine_id"`   // The machine the capabilities apply to.
	CanView     bool      `json:"can_view"`     // May read machine state and shift data.
	CanOperate  bool      `json:"can_operate"`  // May start and stop operations.
	CanMaintain bool      `json:"can_maintain"` // May manage maintenance status.
	CanEdit     bool      `json:"can_edit"`     // May edit machine attributes.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this row was created.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}

// Allows reports whether the permission row grants the given capability.
func (p *MachinePermission) Allows(capability Capability) bool {
	if p == nil {
		return false
	}
	switch capability {
	case CapabilityView:
		return p.CanView
	case CapabilityOperate:
		return p.CanOperate
	case CapabilityMaintain:
		return p.CanMaintain
	case CapabilityEdit:
		return p.CanEdit
	default:
		return false
	}
}
