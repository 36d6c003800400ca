package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"zara/internal/delivery/http/middleware"
	"zara/internal/delivery/http/response"
	"zara/internal/domain/entity"
	"zara/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OperationHandlerParams holds dependencies for OperationHandler, injected by Fx.
type OperationHandlerParams struct {
	fx.In

	OperationUC usecase.OperationUsecase
	Logger      *slog.Logger
}

// OperationHandler holds dependencies for operation lifecycle handlers.
type OperationHandler struct {
	operationUC usecase.OperationUsecase
	logger      *slog.Logger
}

// NewOperationHandler is the constructor for OperationHandler.
func NewOperationHandler(params OperationHandlerParams) *OperationHandler {
	return &OperationHandler{
		operationUC: params.OperationUC,
		logger:      params.Logger,
	}
}

// StartOperationRequest represents the request body for starting an operation.
type StartOperationRequest struct {
	MachineID string `json:"machine_id" validate:"required,uuid"`
	Notes     string `json:"notes"`
}

// CancelOperationRequest represents the request body for cancelling an operation.
type CancelOperationRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// StartOperation opens an operation for the authenticated operator.
func (h *OperationHandler) StartOperation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identificador de usuário inválido no token")
	}

	var req StartOperationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de operação inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	machineID, err := uuid.Parse(req.MachineID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de máquina inválido")
	}

	operation, err := h.operationUC.StartOperation(c.Request().Context(), userID, machineID, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, operation)
}

// StopOperation completes an active operation. Only the owning operator or
// a management role may close someone's operation.
func (h *OperationHandler) StopOperation(c echo.Context) error {
	operationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de operação inválido")
	}

	if err := h.authorizeClose(c, operationID); err != nil {
		return err
	}

	operation, err := h.operationUC.StopOperation(c.Request().Context(), operationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, operation)
}

// CancelOperation cancels an active operation, recording the reason.
func (h *OperationHandler) CancelOperation(c echo.Context) error {
	operationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de operação inválido")
	}

	var req CancelOperationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cancelamento inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.authorizeClose(c, operationID); err != nil {
		return err
	}

	operation, err := h.operationUC.CancelOperation(c.Request().Context(), operationID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, operation)
}

// authorizeClose allows stop/cancel only for the operator who owns the
// operation or for a management role. Missing operations fall through to the
// usecase so the caller gets the regular not-found error.
func (h *OperationHandler) authorizeClose(c echo.Context, operationID uuid.UUID) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identificador de usuário inválido no token")
	}

	if isManagement(c) {
		return nil
	}

	operation, err := h.operationUC.GetOperation(c.Request().Context(), operationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if operation.UserID != userID {
		return response.Forbidden(c, "PERMISSION_DENIED", "Apenas o operador responsável ou a gestão pode encerrar esta operação")
	}

	return nil
}

func isManagement(c echo.Context) bool {
	roles, ok := middleware.GetRoles(c)
	if !ok {
		return false
	}

	for _, role := range entity.ManagementRoles() {
		if slices.Contains(roles, role.String()) {
			return true
		}
	}

	return false
}

// GetOperation retrieves one operation.
func (h *OperationHandler) GetOperation(c echo.Context) error {
	operationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de operação inválido")
	}

	operation, err := h.operationUC.GetOperation(c.Request().Context(), operationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, operation)
}

// ListActiveOperations retrieves all currently active operations.
func (h *OperationHandler) ListActiveOperations(c echo.Context) error {
	operations, err := h.operationUC.ListActiveOperations(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, operations)
}
