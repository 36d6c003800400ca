package handler

import (
	"log/slog"
	"net/http"

	"zara/internal/delivery/http/response"
	"zara/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PermissionHandlerParams holds dependencies for PermissionHandler, injected by Fx.
type PermissionHandlerParams struct {
	fx.In

	PermissionUC usecase.PermissionUsecase
	Logger       *slog.Logger
}

// PermissionHandler holds dependencies for machine permission handlers.
type PermissionHandler struct {
	permissionUC usecase.PermissionUsecase
	logger       *slog.Logger
}

// NewPermissionHandler is the constructor for PermissionHandler.
func NewPermissionHandler(params PermissionHandlerParams) *PermissionHandler {
	return &PermissionHandler{
		permissionUC: params.PermissionUC,
		logger:       params.Logger,
	}
}

// GrantPermissionRequest represents the request body for granting capabilities.
type GrantPermissionRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	MachineID   string `json:"machine_id" validate:"required,uuid"`
	CanView     bool   `json:"can_view"`
	CanOperate  bool   `json:"can_operate"`
	CanMaintain bool   `json:"can_maintain"`
	CanEdit     bool   `json:"can_edit"`
}

// Grant creates or replaces the capability flags for a (user, machine) pair.
func (h *PermissionHandler) Grant(c echo.Context) error {
	var req GrantPermissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de permissão inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de usuário inválido")
	}

	machineID, err := uuid.Parse(req.MachineID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de máquina inválido")
	}

	permission, err := h.permissionUC.Grant(c.Request().Context(), userID, machineID, usecase.PermissionGrant{
		CanView:     req.CanView,
		CanOperate:  req.CanOperate,
		CanMaintain: req.CanMaintain,
		CanEdit:     req.CanEdit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, permission)
}

// Revoke removes the permission row for a (user, machine) pair.
func (h *PermissionHandler) Revoke(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de usuário inválido")
	}

	machineID, err := uuid.Parse(c.Param("machineId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de máquina inválido")
	}

	if err := h.permissionUC.Revoke(c.Request().Context(), userID, machineID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Permissão revogada com sucesso"})
}

// ListForUser retrieves all permissions granted to a user.
func (h *PermissionHandler) ListForUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de usuário inválido")
	}

	permissions, err := h.permissionUC.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, permissions)
}

// ListForMachine retrieves all permissions attached to a machine.
func (h *PermissionHandler) ListForMachine(c echo.Context) error {
	machineID, err := uuid.Parse(c.Param("machineId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de máquina inválido")
	}

	permissions, err := h.permissionUC.ListForMachine(c.Request().Context(), machineID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, permissions)
}
