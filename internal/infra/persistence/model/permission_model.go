package model

import (
	"time"

	"github.com/google/uuid"
)

// MachinePermissionModel mirrors the 'machine_permissions' table. One row per
// (user, machine) pair; absence of a row denies every capability.
type MachinePermissionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_machine_permissions_pair"`
	MachineID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_machine_permissions_pair"`
	CanView     bool      `gorm:"not null;default:false"`
	CanOperate  bool      `gorm:"not null;default:false"`
	CanMaintain bool      `gorm:"not null;default:false"`
	CanEdit     bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MachinePermissionModel) TableName() string {
	return "machine_permissions"
}
