package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	"zara/internal/domain/service"
	"zara/internal/errors"
	"zara/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService creates a new account and authentication service instance.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterUser creates a new account with a hashed password. The unique
// e-mail index resolves concurrent registrations of the same address.
func (s *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("papel de usuário inválido")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	s.logger.Info("User registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair. The
// not-found and wrong-password paths collapse into the same error so the
// response never reveals whether an address is registered.
func (s *userService) Login(ctx context.Context, email, password string) (*entity.User, *usecase.TokenPair, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, errors.Wrap(err, "failed to find user by email")
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, domainerrors.ErrForbidden
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate tokens")
	}

	s.logger.Debug("User logged in", slog.String("user_id", user.ID.String()))

	return user, &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// GetProfile retrieves the authenticated user's account.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
