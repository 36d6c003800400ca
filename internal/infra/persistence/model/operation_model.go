package model

import (
	"time"

	"github.com/google/uuid"
)

// OperationModel mirrors the 'operations' table.
//
// Two partial unique indexes enforce the at-most-one-ACTIVE invariant at the
// database level, so concurrent starts lose the race atomically:
//
//	CREATE UNIQUE INDEX idx_operations_active_machine ON operations (machine_id) WHERE status = 'ACTIVE';
//	CREATE UNIQUE INDEX idx_operations_active_user    ON operations (user_id)    WHERE status = 'ACTIVE';
//
// GORM's index tags cannot express partial indexes, so they live in the
// migration SQL; the Where tag below documents them for AutoMigrate setups.
type OperationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MachineID uuid.UUID `gorm:"type:uuid;not null;index:idx_operations_active_machine,unique,where:status = 'ACTIVE'"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_operations_active_user,unique,where:status = 'ACTIVE'"`
	Status    string    `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	StartTime time.Time `gorm:"not null;index"`
	EndTime   *time.Time
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OperationModel) TableName() string {
	return "operations"
}
