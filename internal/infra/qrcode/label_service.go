// Package qrcode implements the machine floor label service.
package qrcode

import (
	"encoding/json"
	"fmt"

	"zara/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LabelData represents the payload encoded in a machine floor label.
type LabelData struct {
	MachineID string `json:"machine_id"`
	Code      string `json:"code"`
	Type      string `json:"type"`
}

const labelType = "machine"

// NewLabelService creates a new machine label service instance.
func NewLabelService(size int, errorCorrectionLevel string) service.LabelService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &labelService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateMachineLabel generates a QR code PNG identifying a machine.
func (s *labelService) GenerateMachineLabel(machineID uuid.UUID, code string) ([]byte, error) {
	data := LabelData{
		MachineID: machineID.String(),
		Code:      code,
		Type:      labelType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal label data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseMachineLabel parses scanned QR data and returns the machine ID.
func (s *labelService) ParseMachineLabel(qrData string) (uuid.UUID, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal label data: %w", err)
	}

	if data.Type != labelType {
		return uuid.Nil, fmt.Errorf("invalid label type: %s", data.Type)
	}

	machineID, err := uuid.Parse(data.MachineID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse machine ID: %w", err)
	}

	return machineID, nil
}
