package repository

import (
	"context"
	"errors"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when creating a user with an e-mail already registered.
	ErrEmailTaken = errors.New("email already taken")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by their login e-mail.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindActiveByRoles retrieves all active users holding any of the given
	// roles. The notification dispatcher resolves audiences through this.
	FindActiveByRoles(ctx context.Context, roles entity.Roles) ([]*entity.User, error)
}
