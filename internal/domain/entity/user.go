package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system: an operator, leader, manager or
// administrator. Credentials live beside the identity because the system has
// a single password-based authentication method.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Name         string    `json:"name"`       // The user's display name.
	Email        string    `json:"email"`      // Login identifier, unique system-wide.
	PasswordHash string    `json:"-"`          // bcrypt hash of the user's password; never serialized.
	Role         Role      `json:"role"`       // The user's role in the plant.
	IsActive     bool      `json:"is_active"`  // Soft-deactivation flag; inactive users receive no notifications.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}
