package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zara/internal/delivery/http/validator"
	"zara/internal/domain/entity"
	mockUC "zara/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOperationTestContext(t *testing.T, method, target, body string, userID uuid.UUID, roles []string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)
	c.Set("roles", roles)

	return c, rec
}

func activeOperationFor(userID uuid.UUID) *entity.Operation {
	return &entity.Operation{
		ID:        uuid.New(),
		MachineID: uuid.New(),
		UserID:    userID,
		Status:    entity.OperationActive,
		StartTime: time.Now().Add(-time.Hour),
	}
}

func TestOperationHandler_StopOperation_OwnerAllowed(t *testing.T) {
	operationUC := mockUC.NewMockOperationUsecase(t)
	userID := uuid.New()
	operation := activeOperationFor(userID)

	operationUC.EXPECT().GetOperation(mock.Anything, operation.ID).Return(operation, nil)

	stopped := *operation
	stopped.Status = entity.OperationCompleted
	operationUC.EXPECT().StopOperation(mock.Anything, operation.ID).Return(&stopped, nil)

	h := &OperationHandler{operationUC: operationUC, logger: slog.Default()}
	ctx, rec := newOperationTestContext(t, http.MethodPost, "/api/v1/operations/"+operation.ID.String()+"/stop", "", userID, []string{entity.RoleOperator.String()})
	ctx.SetParamNames("id")
	ctx.SetParamValues(operation.ID.String())

	err := h.StopOperation(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(entity.OperationCompleted))
}

func TestOperationHandler_StopOperation_OtherOperatorForbidden(t *testing.T) {
	operationUC := mockUC.NewMockOperationUsecase(t)
	operation := activeOperationFor(uuid.New())

	operationUC.EXPECT().GetOperation(mock.Anything, operation.ID).Return(operation, nil)

	h := &OperationHandler{operationUC: operationUC, logger: slog.Default()}
	ctx, rec := newOperationTestContext(t, http.MethodPost, "/api/v1/operations/"+operation.ID.String()+"/stop", "", uuid.New(), []string{entity.RoleOperator.String()})
	ctx.SetParamNames("id")
	ctx.SetParamValues(operation.ID.String())

	err := h.StopOperation(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "PERMISSION_DENIED")
	operationUC.AssertNotCalled(t, "StopOperation", mock.Anything, operation.ID)
}

func TestOperationHandler_StopOperation_ManagementBypassesOwnership(t *testing.T) {
	operationUC := mockUC.NewMockOperationUsecase(t)
	operation := activeOperationFor(uuid.New())

	stopped := *operation
	stopped.Status = entity.OperationCompleted
	operationUC.EXPECT().StopOperation(mock.Anything, operation.ID).Return(&stopped, nil)

	h := &OperationHandler{operationUC: operationUC, logger: slog.Default()}
	ctx, rec := newOperationTestContext(t, http.MethodPost, "/api/v1/operations/"+operation.ID.String()+"/stop", "", uuid.New(), []string{entity.RoleManager.String()})
	ctx.SetParamNames("id")
	ctx.SetParamValues(operation.ID.String())

	err := h.StopOperation(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	operationUC.AssertNotCalled(t, "GetOperation", mock.Anything, operation.ID)
}

func TestOperationHandler_CancelOperation_OtherOperatorForbidden(t *testing.T) {
	operationUC := mockUC.NewMockOperationUsecase(t)
	operation := activeOperationFor(uuid.New())

	operationUC.EXPECT().GetOperation(mock.Anything, operation.ID).Return(operation, nil)

	h := &OperationHandler{operationUC: operationUC, logger: slog.Default()}
	body := `{"reason":"Fio rompido no quadro"}`
	ctx, rec := newOperationTestContext(t, http.MethodPost, "/api/v1/operations/"+operation.ID.String()+"/cancel", body, uuid.New(), []string{entity.RoleOperator.String()})
	ctx.SetParamNames("id")
	ctx.SetParamValues(operation.ID.String())

	err := h.CancelOperation(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	operationUC.AssertNotCalled(t, "CancelOperation", mock.Anything, operation.ID, "Fio rompido no quadro")
}

func TestOperationHandler_CancelOperation_LeaderAllowed(t *testing.T) {
	operationUC := mockUC.NewMockOperationUsecase(t)
	operation := activeOperationFor(uuid.New())

	cancelled := *operation
	cancelled.Status = entity.OperationCancelled
	operationUC.EXPECT().CancelOperation(mock.Anything, operation.ID, "Troca de turno").Return(&cancelled, nil)

	h := &OperationHandler{operationUC: operationUC, logger: slog.Default()}
	ctx, rec := newOperationTestContext(t, http.MethodPost, "/api/v1/operations/"+operation.ID.String()+"/cancel", `{"reason":"Troca de turno"}`, uuid.New(), []string{entity.RoleLeader.String()})
	ctx.SetParamNames("id")
	ctx.SetParamValues(operation.ID.String())

	err := h.CancelOperation(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(entity.OperationCancelled))
}

func TestOperationHandler_StopOperation_MissingUserID(t *testing.T) {
	operationUC := mockUC.NewMockOperationUsecase(t)
	operationID := uuid.New()

	h := &OperationHandler{operationUC: operationUC, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/operations/"+operationID.String()+"/stop", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues(operationID.String())

	err := h.StopOperation(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
