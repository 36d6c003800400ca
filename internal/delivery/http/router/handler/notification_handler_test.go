package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zara/internal/domain/entity"
	mockUC "zara/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationTestContext(t *testing.T, target string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	return c, rec
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	userID := uuid.New()

	stored := []*entity.Notification{
		{
			ID:      uuid.New(),
			UserID:  userID,
			Type:    entity.NotificationMachineStatus,
			Title:   "Manutenção iniciada",
			Message: "Máquina TEAR-07 entrou em manutenção",
			Metadata: &entity.MachineStatusMetadata{
				MachineID:      uuid.New(),
				MachineCode:    "TEAR-07",
				PreviousStatus: entity.MachineStopped,
				NewStatus:      entity.MachineMaintenance,
			},
			CreatedAt: time.Now(),
		},
	}
	notificationUC.EXPECT().ListForUser(mock.Anything, userID, true, 10, 0).Return(stored, nil)

	h := &NotificationHandler{notificationUC: notificationUC, logger: slog.Default()}
	ctx, rec := newNotificationTestContext(t, "/api/v1/notifications?unread=true&limit=10", userID)

	err := h.ListNotifications(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TEAR-07")
	assert.Contains(t, rec.Body.String(), "Manutenção iniciada")
}

func TestNotificationHandler_ListNotifications_ClampsPageSize(t *testing.T) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	userID := uuid.New()

	notificationUC.EXPECT().ListForUser(mock.Anything, userID, false, maxNotificationPageSize, 0).
		Return([]*entity.Notification{}, nil)

	h := &NotificationHandler{notificationUC: notificationUC, logger: slog.Default()}
	ctx, rec := newNotificationTestContext(t, "/api/v1/notifications?limit=9999", userID)

	err := h.ListNotifications(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_MarkRead_InvalidID(t *testing.T) {
	h := &NotificationHandler{notificationUC: mockUC.NewMockNotificationUsecase(t), logger: slog.Default()}
	ctx, rec := newNotificationTestContext(t, "/api/v1/notifications/not-a-uuid/read", uuid.New())
	ctx.SetParamNames("id")
	ctx.SetParamValues("not-a-uuid")

	err := h.MarkRead(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	userID := uuid.New()
	notificationUC.EXPECT().MarkAllRead(mock.Anything, userID).Return(int64(3), nil)

	h := &NotificationHandler{notificationUC: notificationUC, logger: slog.Default()}
	ctx, rec := newNotificationTestContext(t, "/api/v1/notifications/read-all", userID)

	err := h.MarkAllRead(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":3`)
}

func TestNotificationHandler_MissingUserID(t *testing.T) {
	h := &NotificationHandler{notificationUC: mockUC.NewMockNotificationUsecase(t), logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	err := h.ListNotifications(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
