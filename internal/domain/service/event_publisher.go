package service

import (
	"context"
	"time"
)

// Machine event types pushed to connected floor clients.
const (
	EventOperationStarted   = "operation_started"
	EventOperationStopped   = "operation_stopped"
	EventOperationCancelled = "operation_cancelled"
	EventOperationStuck     = "operation_stuck"
	EventMachineStatus      = "machine_status"
)

// MachineEvent is the real-time event broadcast when machine or operation
// state changes. The transport is external; the core only emits.
type MachineEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	Type           string    `json:"type"`
	MachineID      string    `json:"machine_id"`
	MachineCode    string    `json:"machine_code"`
	OperationID    string    `json:"operation_id,omitempty"`
	OperatorID     string    `json:"operator_id,omitempty"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing machine events to the
// real-time push channel.
type EventPublisher interface {
	// PublishMachineEvent publishes a machine event for broadcast to clients.
	PublishMachineEvent(ctx context.Context, event *MachineEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
