package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockUserRepository,
	*mockSvc.MockMailSender,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mailSender := mockSvc.NewMockMailSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotificationService(notificationRepo, userRepo, mailSender, 5*time.Minute, logger)

	return service, notificationRepo, userRepo, mailSender
}

func machineStatusInput(priority entity.NotificationPriority) usecase.DispatchInput {
	machineID := uuid.New()

	return usecase.DispatchInput{
		Title:    "Máquina TEAR-03 em manutenção",
		Message:  "Máquina TEAR-03 mudou de PARADA para MANUTENÇÃO",
		Priority: priority,
		Metadata: entity.MachineStatusMetadata{
			MachineID:      machineID,
			MachineCode:    "TEAR-03",
			PreviousStatus: entity.MachineStopped,
			NewStatus:      entity.MachineMaintenance,
		},
	}
}

func manager() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Name:     "Gerente",
		Email:    "gerente@example.com",
		Role:     entity.RoleManager,
		IsActive: true,
	}
}

func TestNotificationService_DispatchToRoles_DefaultsToManagement(t *testing.T) {
	service, notificationRepo, userRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	leader := manager()
	leader.Role = entity.RoleLeader
	audience := []*entity.User{manager(), leader}

	userRepo.EXPECT().FindActiveByRoles(ctx, entity.ManagementRoles()).Return(audience, nil)
	notificationRepo.EXPECT().
		CountRecentByContentHash(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).Times(2)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil).Times(2)

	created, err := service.DispatchToRoles(ctx, machineStatusInput(entity.PriorityMedium))

	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestNotificationService_DispatchToRoles_SuppressesDuplicates(t *testing.T) {
	service, notificationRepo, userRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	recipient := manager()

	userRepo.EXPECT().FindActiveByRoles(ctx, entity.ManagementRoles()).
		Return([]*entity.User{recipient}, nil)
	// An identical notification already landed within the lookback window.
	notificationRepo.EXPECT().
		CountRecentByContentHash(ctx, recipient.ID, mock.Anything, mock.Anything).
		Return(int64(1), nil)

	created, err := service.DispatchToRoles(ctx, machineStatusInput(entity.PriorityMedium))

	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestNotificationService_DispatchToRoles_HighPriorityEscalatesByMail(t *testing.T) {
	service, notificationRepo, userRepo, mailSender := createTestNotificationService(t)
	ctx := context.Background()

	recipient := manager()
	input := machineStatusInput(entity.PriorityHigh)

	userRepo.EXPECT().FindActiveByRoles(ctx, entity.ManagementRoles()).
		Return([]*entity.User{recipient}, nil)
	notificationRepo.EXPECT().
		CountRecentByContentHash(ctx, recipient.ID, mock.Anything, mock.Anything).
		Return(int64(0), nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	mailSender.EXPECT().Send(ctx, recipient.Email, input.Title, input.Message).Return(nil)

	created, err := service.DispatchToRoles(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestNotificationService_DispatchToRoles_MailFailureIsBestEffort(t *testing.T) {
	service, notificationRepo, userRepo, mailSender := createTestNotificationService(t)
	ctx := context.Background()

	recipient := manager()
	input := machineStatusInput(entity.PriorityHigh)

	userRepo.EXPECT().FindActiveByRoles(ctx, entity.ManagementRoles()).
		Return([]*entity.User{recipient}, nil)
	notificationRepo.EXPECT().
		CountRecentByContentHash(ctx, recipient.ID, mock.Anything, mock.Anything).
		Return(int64(0), nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	mailSender.EXPECT().Send(ctx, recipient.Email, input.Title, input.Message).
		Return(assert.AnError)

	created, err := service.DispatchToRoles(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestNotificationService_DispatchToRoles_NoMailSenderConfigured(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewNotificationService(notificationRepo, userRepo, nil, 0, logger)
	ctx := context.Background()

	recipient := manager()

	userRepo.EXPECT().FindActiveByRoles(ctx, entity.ManagementRoles()).
		Return([]*entity.User{recipient}, nil)
	notificationRepo.EXPECT().
		CountRecentByContentHash(ctx, recipient.ID, mock.Anything, mock.Anything).
		Return(int64(0), nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	created, err := service.DispatchToRoles(ctx, machineStatusInput(entity.PriorityHigh))

	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestNotificationService_DispatchToRoles_StorageFailureSkipsRecipient(t *testing.T) {
	service, notificationRepo, userRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	first := manager()
	second := manager()

	userRepo.EXPECT().FindActiveByRoles(ctx, entity.ManagementRoles()).
		Return([]*entity.User{first, second}, nil)
	notificationRepo.EXPECT().
		CountRecentByContentHash(ctx, first.ID, mock.Anything, mock.Anything).
		Return(int64(0), nil)
	notificationRepo.EXPECT().
		CountRecentByContentHash(ctx, second.ID, mock.Anything, mock.Anything).
		Return(int64(0), nil)
	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == first.ID
		})).
		Return(domainerrors.NewDatabaseExecuteError(assert.AnError, "insert failed"))
	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == second.ID
		})).
		Return(nil)

	created, err := service.DispatchToRoles(ctx, machineStatusInput(entity.PriorityMedium))

	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestNotificationService_DispatchToRoles_NilMetadata(t *testing.T) {
	service, _, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	input := machineStatusInput(entity.PriorityMedium)
	input.Metadata = nil

	created, err := service.DispatchToRoles(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 0, created)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	service, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	notificationRepo.EXPECT().MarkRead(ctx, id, userID).Return(repository.ErrNotificationNotFound)

	err := service.MarkRead(ctx, id, userID)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	service, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(int64(3), nil)

	updated, err := service.MarkAllRead(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
}

func TestNotificationService_ListForUser(t *testing.T) {
	service, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	notifications := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Read: false},
	}
	notificationRepo.EXPECT().ListByUser(ctx, userID, true, 20, 0).Return(notifications, nil)

	result, err := service.ListForUser(ctx, userID, true, 20, 0)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
