package model

import (
	"time"

	"github.com/google/uuid"
)

// MachineModel mirrors the 'machines' table. Machines are soft-deactivated
// through IsActive and never hard-deleted, so closed operations keep their
// machine reference.
type MachineModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code            string    `gorm:"type:varchar(50);unique;not null"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'STOPPED';index"`
	ProductionSpeed float64   `gorm:"type:decimal(10,4);not null;default:0"`
	IsActive        bool      `gorm:"not null;default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Operations  []OperationModel         `gorm:"foreignKey:MachineID"`
	ShiftData   []ShiftDataModel         `gorm:"foreignKey:MachineID"`
	Permissions []MachinePermissionModel `gorm:"foreignKey:MachineID"`
}

// TableName explicitly sets the table name for GORM.
func (MachineModel) TableName() string {
	return "machines"
}
