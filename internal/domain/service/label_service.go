package service

import (
	"github.com/google/uuid"
)

// LabelService defines the interface for generating and parsing the QR
// labels printed on machines so operators can scan-to-operate.
type LabelService interface {
	// GenerateMachineLabel generates a QR code PNG identifying a machine.
	GenerateMachineLabel(machineID uuid.UUID, code string) ([]byte, error)

	// ParseMachineLabel parses scanned QR data and returns the machine ID.
	ParseMachineLabel(qrData string) (uuid.UUID, error)
}
