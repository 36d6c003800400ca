package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShiftType identifies one of the two fixed 12-hour production windows.
type ShiftType string

const (
	// ShiftMorning covers 07:00 to 19:00 local time.
	ShiftMorning ShiftType = "MORNING"
	// ShiftNight covers 19:00 to 07:00 of the following day, local time.
	ShiftNight ShiftType = "NIGHT"
)

// Shift boundary hours, local time.
const (
	shiftMorningStartHour = 7
	shiftNightStartHour   = 19
)

// String returns the string representation of the ShiftType.
func (s ShiftType) String() string {
	return string(s)
}

// IsValid checks if the ShiftType is a valid value.
func (s ShiftType) IsValid() bool {
	return s == ShiftMorning || s == ShiftNight
}

// ShiftWindow brackets one shift occurrence in time. Date is the calendar
// day the window starts on; for the night shift the window end falls on the
// following day.
type ShiftWindow struct {
	Type  ShiftType
	Date  time.Time // Midnight of the calendar day the window starts on.
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, start inclusive.
func (w ShiftWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// ShiftWindowAt maps a timestamp to the shift window containing it.
// Pure function: the night window spanning midnight belongs to the calendar
// day it started on, so 03:00 maps to the previous day's NIGHT shift.
func ShiftWindowAt(now time.Time) ShiftWindow {
	loc := now.Location()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch {
	case now.Hour() < shiftMorningStartHour:
		// Early morning belongs to yesterday's night shift.
		prev := day.AddDate(0, 0, -1)

		return ShiftWindow{
			Type:  ShiftNight,
			Date:  prev,
			Start: prev.Add(shiftNightStartHour * time.Hour),
			End:   day.Add(shiftMorningStartHour * time.Hour),
		}
	case now.Hour() < shiftNightStartHour:
		return ShiftWindow{
			Type:  ShiftMorning,
			Date:  day,
			Start: day.Add(shiftMorningStartHour * time.Hour),
			End:   day.Add(shiftNightStartHour * time.Hour),
		}
	default:
		return ShiftWindow{
			Type:  ShiftNight,
			Date:  day,
			Start: day.Add(shiftNightStartHour * time.Hour),
			End:   day.AddDate(0, 0, 1).Add(shiftMorningStartHour * time.Hour),
		}
	}
}

// ShiftData is the aggregated production record for one machine over one
// shift window. TotalProduction is monotonically non-decreasing while the
// window is open and read-only after it closes.
type ShiftData struct {
	ID              uuid.UUID `json:"id"`               // The Global Unique Identifier (GUID) for the record.
	MachineID       uuid.UUID `json:"machine_id"`       // The machine this record aggregates.
	ShiftDate       time.Time `json:"shift_date"`       // Calendar day the shift window starts on.
	ShiftType       ShiftType `json:"shift_type"`       // MORNING or NIGHT.
	TotalProduction int       `json:"total_production"` // Accrued whole pieces, never decreased.
	Efficiency      float64   `json:"efficiency"`       // Produced over nominal capacity for the elapsed window, in [0, 1].
	StartTime       time.Time `json:"start_time"`       // Window start.
	EndTime         time.Time `json:"end_time"`         // Window end.
	CreatedAt       time.Time `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt       time.Time `json:"updated_at"`       // Timestamp of the last modification.
}
