package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

// NotificationType tags the metadata variant carried by a notification.
type NotificationType string

const (
	// NotificationMachineStatus is emitted when a machine changes status outside the lifecycle manager.
	NotificationMachineStatus NotificationType = "MACHINE_STATUS"
	// NotificationOperationStarted is emitted when an operator starts an operation.
	NotificationOperationStarted NotificationType = "OPERATION_STARTED"
	// NotificationOperationStopped is emitted when an operation completes normally.
	NotificationOperationStopped NotificationType = "OPERATION_STOPPED"
	// NotificationOperationCancelled is emitted when an operation is cancelled manually.
	NotificationOperationCancelled NotificationType = "OPERATION_CANCELLED"
	// NotificationOperationStuck is emitted when the sweep cancels an abandoned operation.
	NotificationOperationStuck NotificationType = "OPERATION_STUCK"
)

// NotificationPriority orders notifications for display and escalation.
type NotificationPriority string

const (
	// PriorityLow is informational.
	PriorityLow NotificationPriority = "LOW"
	// PriorityMedium is the default for lifecycle events.
	PriorityMedium NotificationPriority = "MEDIUM"
	// PriorityHigh triggers e-mail escalation when a mail sender is configured.
	PriorityHigh NotificationPriority = "HIGH"
)

// IsValid checks if the NotificationPriority is a valid value.
func (p NotificationPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Metadata validation errors.
var (
	ErrMetadataMissingMachine   = errors.New("notification metadata requires a machine reference")
	ErrMetadataMissingOperation = errors.New("notification metadata requires an operation reference")
	ErrMetadataInvalidStatus    = errors.New("notification metadata carries an invalid machine status")
)

// NotificationMetadata is the tagged-variant structured payload of a
// notification. Each variant validates itself at construction time so
// malformed payloads never reach storage.
type NotificationMetadata interface {
	Kind() NotificationType
	Validate() error
}

// MachineStatusMetadata carries the previous and new status of a machine.
type MachineStatusMetadata struct {
	MachineID      uuid.UUID     `json:"machine_id"`
	MachineCode    string        `json:"machine_code"`
	PreviousStatus MachineStatus `json:"previous_status"`
	NewStatus      MachineStatus `json:"new_status"`
}

// Kind returns the variant tag.
func (m MachineStatusMetadata) Kind() NotificationType { return NotificationMachineStatus }

// Validate checks the payload invariants.
func (m MachineStatusMetadata) Validate() error {
	if m.MachineID == uuid.Nil {
		return ErrMetadataMissingMachine
	}
	if !m.PreviousStatus.IsValid() || !m.NewStatus.IsValid() {
		return ErrMetadataInvalidStatus
	}

	return nil
}

// OperationMetadata carries the operation an event refers to. The same
// variant shape serves the started/stopped/cancelled/stuck types; the tag
// distinguishes them.
type OperationMetadata struct {
	Type        NotificationType `json:"type"`
	OperationID uuid.UUID        `json:"operation_id"`
	MachineID   uuid.UUID        `json:"machine_id"`
	MachineCode string           `json:"machine_code"`
	OperatorID  uuid.UUID        `json:"operator_id"`
	StartedAt   time.Time        `json:"started_at"`
	Duration    string           `json:"duration,omitempty"` // Human-readable elapsed time for stop/cancel/stuck events.
	Reason      string           `json:"reason,omitempty"`   // Cancellation reason, when applicable.
}

// Kind returns the variant tag.
func (m OperationMetadata) Kind() NotificationType { return m.Type }

// Validate checks the payload invariants.
func (m OperationMetadata) Validate() error {
	if m.OperationID == uuid.Nil {
		return ErrMetadataMissingOperation
	}
	if m.MachineID == uuid.Nil {
		return ErrMetadataMissingMachine
	}

	return nil
}

// Notification is a user-targeted event record. Mutated only to flip Read.
type Notification struct {
	ID          uuid.UUID            `json:"id"`           // The Global Unique Identifier (GUID) for the notification.
	UserID      uuid.UUID            `json:"user_id"`      // The recipient.
	Type        NotificationType     `json:"type"`         // The metadata variant tag.
	Title       string               `json:"title"`        // Short headline.
	Message     string               `json:"message"`      // Full human-readable message.
	Priority    NotificationPriority `json:"priority"`     // LOW, MEDIUM or HIGH.
	Read        bool                 `json:"read"`         // Whether the recipient has seen it.
	Metadata    NotificationMetadata `json:"metadata"`     // Validated structured payload.
	ContentHash string               `json:"content_hash"` // Dedupe key over (user, type, message).
	CreatedAt   time.Time            `json:"created_at"`   // Timestamp of when this record was created.
}

// NewNotification builds a validated notification with its dedupe hash set.
func NewNotification(userID uuid.UUID, title, message string, priority NotificationPriority, metadata NotificationMetadata) (*Notification, error) {
	if err := metadata.Validate(); err != nil {
		return nil, err
	}
	if !priority.IsValid() {
		priority = PriorityMedium
	}

	return &Notification{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        metadata.Kind(),
		Title:       title,
		Message:     message,
		Priority:    priority,
		Metadata:    metadata,
		ContentHash: NotificationContentHash(userID, metadata.Kind(), message),
		CreatedAt:   time.Now(),
	}, nil
}

// NotificationContentHash derives the dedupe key for a (user, type, message)
// triple. The hash is stored and indexed so duplicate suppression survives
// process restarts and multiple replicas.
func NotificationContentHash(userID uuid.UUID, notificationType NotificationType, message string) string {
	h := sha256.New()
	h.Write(userID[:])
	h.Write([]byte(notificationType))
	h.Write([]byte(message))

	return hex.EncodeToString(h.Sum(nil))
}
