package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	mockRepo "zara/internal/mocks/repository"
	mockSvc "zara/internal/mocks/service"
	"zara/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewUserService(userRepo, hasher, tokenService, logger)

	return service, userRepo, hasher, tokenService
}

func activeOperator() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Name:         "Maria Souza",
		Email:        "maria@example.com",
		PasswordHash: "$2a$10$stored-hash",
		Role:         entity.RoleOperator,
		IsActive:     true,
	}
}

func TestRegisterUser_Success(t *testing.T) {
	t.Parallel()

	service, userRepo, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("s3nh4-forte").Return("$2a$10$hashed", nil)
	userRepo.EXPECT().
		CreateUser(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "maria@example.com" &&
				u.PasswordHash == "$2a$10$hashed" &&
				u.Role == entity.RoleOperator &&
				u.IsActive
		})).
		Return(nil)

	user, err := service.RegisterUser(ctx, usecase.RegisterUserInput{
		Name:     "Maria Souza",
		Email:    "  Maria@Example.com ",
		Password: "s3nh4-forte",
		Role:     entity.RoleOperator,
	})

	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestRegisterUser_MissingFields(t *testing.T) {
	t.Parallel()

	service, _, _, _ := createTestUserService(t)

	user, err := service.RegisterUser(context.Background(), usecase.RegisterUserInput{
		Name: "Sem e-mail",
		Role: entity.RoleOperator,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, user)
}

func TestRegisterUser_InvalidRole(t *testing.T) {
	t.Parallel()

	service, _, _, _ := createTestUserService(t)

	user, err := service.RegisterUser(context.Background(), usecase.RegisterUserInput{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Password: "s3nh4-forte",
		Role:     entity.Role("INTERN"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, user)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	t.Parallel()

	service, userRepo, hasher, _ := createTestUserService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("s3nh4-forte").Return("$2a$10$hashed", nil)
	userRepo.EXPECT().CreateUser(ctx, mock.Anything).Return(repository.ErrEmailTaken)

	user, err := service.RegisterUser(ctx, usecase.RegisterUserInput{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Password: "s3nh4-forte",
		Role:     entity.RoleOperator,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, user)
}

func TestRegisterUser_HashFailure(t *testing.T) {
	t.Parallel()

	service, _, hasher, _ := createTestUserService(t)

	hasher.EXPECT().Hash("s3nh4-forte").Return("", assert.AnError)

	user, err := service.RegisterUser(context.Background(), usecase.RegisterUserInput{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Password: "s3nh4-forte",
		Role:     entity.RoleOperator,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Nil(t, user)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	service, userRepo, hasher, tokenService := createTestUserService(t)
	ctx := context.Background()
	stored := activeOperator()

	userRepo.EXPECT().FindUserByEmail(ctx, "maria@example.com").Return(stored, nil)
	hasher.EXPECT().Check("s3nh4-forte", stored.PasswordHash).Return(true)
	tokenService.EXPECT().
		GenerateTokens(stored.ID, []string{entity.RoleOperator.String()}).
		Return("access-token", "refresh-token", nil)

	user, pair, err := service.Login(ctx, " Maria@Example.com ", "s3nh4-forte")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByEmail(ctx, "ninguem@example.com").
		Return(nil, repository.ErrUserNotFound)

	user, pair, err := service.Login(ctx, "ninguem@example.com", "tanto-faz")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Nil(t, pair)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	service, userRepo, hasher, _ := createTestUserService(t)
	ctx := context.Background()
	stored := activeOperator()

	userRepo.EXPECT().FindUserByEmail(ctx, stored.Email).Return(stored, nil)
	hasher.EXPECT().Check("senha-errada", stored.PasswordHash).Return(false)

	user, pair, err := service.Login(ctx, stored.Email, "senha-errada")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Nil(t, pair)
}

func TestLogin_InactiveUser(t *testing.T) {
	t.Parallel()

	service, userRepo, hasher, _ := createTestUserService(t)
	ctx := context.Background()
	stored := activeOperator()
	stored.IsActive = false

	userRepo.EXPECT().FindUserByEmail(ctx, stored.Email).Return(stored, nil)
	hasher.EXPECT().Check("s3nh4-forte", stored.PasswordHash).Return(true)

	user, pair, err := service.Login(ctx, stored.Email, "s3nh4-forte")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, user)
	assert.Nil(t, pair)
}

func TestGetProfile_Success(t *testing.T) {
	t.Parallel()

	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()
	stored := activeOperator()

	userRepo.EXPECT().FindUserByID(ctx, stored.ID).Return(stored, nil)

	user, err := service.GetProfile(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored.Email, user.Email)
}

func TestGetProfile_NotFound(t *testing.T) {
	t.Parallel()

	service, userRepo, _, _ := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := service.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}
