package model

import (
	"time"

	"github.com/google/uuid"
)

// ShiftDataModel mirrors the 'shift_data' table. One row aggregates the
// production of one machine over one shift window, keyed by the unique
// (machine_id, shift_date, shift_type) triple.
type ShiftDataModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MachineID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shift_data_window"`
	ShiftDate       time.Time `gorm:"type:date;not null;uniqueIndex:idx_shift_data_window"`
	ShiftType       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_shift_data_window"`
	TotalProduction int       `gorm:"not null;default:0"`
	Efficiency      float64   `gorm:"type:decimal(5,4);not null;default:0"`
	StartTime       time.Time `gorm:"not null"`
	EndTime         time.Time `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShiftDataModel) TableName() string {
	return "shift_data"
}
