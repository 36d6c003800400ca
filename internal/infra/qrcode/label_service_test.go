package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabelService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewLabelService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestLabelService_GenerateMachineLabel(t *testing.T) {
	service := NewLabelService(256, "M")
	machineID := uuid.New()

	qrBytes, err := service.GenerateMachineLabel(machineID, "TEAR-01")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestLabelService_ParseMachineLabel(t *testing.T) {
	service := NewLabelService(256, "M")
	machineID := uuid.New()

	data := LabelData{
		MachineID: machineID.String(),
		Code:      "TEAR-01",
		Type:      "machine",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsed, err := service.ParseMachineLabel(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, machineID, parsed)
}

func TestLabelService_ParseMachineLabel_InvalidType(t *testing.T) {
	service := NewLabelService(256, "M")

	data := LabelData{
		MachineID: uuid.New().String(),
		Code:      "TEAR-01",
		Type:      "subscription",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsed, err := service.ParseMachineLabel(string(jsonData))
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestLabelService_ParseMachineLabel_MalformedPayload(t *testing.T) {
	service := NewLabelService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{"Not JSON", "tear-01"},
		{"Bad UUID", `{"machine_id":"not-a-uuid","code":"TEAR-01","type":"machine"}`},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := service.ParseMachineLabel(tt.qrData)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, parsed)
		})
	}
}
