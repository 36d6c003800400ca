package usecase

import (
	"context"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput carries the attributes for creating an account.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// TokenPair bundles the two JWTs returned on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserUsecase covers account creation and authentication.
type UserUsecase interface {
	// RegisterUser creates a new account. Administrative operation.
	RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error)

	// GetProfile retrieves the account of the authenticated user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
