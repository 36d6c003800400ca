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

// MachineHandlerParams holds dependencies for MachineHandler, injected by Fx.
type MachineHandlerParams struct {
	fx.In

	MachineUC    usecase.MachineUsecase
	PermissionUC usecase.PermissionUsecase
	Logger       *slog.Logger
}

// MachineHandler holds dependencies for machine registry handlers.
type MachineHandler struct {
	machineUC    usecase.MachineUsecase
	permissionUC usecase.PermissionUsecase
	logger       *slog.Logger
}

// NewMachineHandler is the constructor for MachineHandler.
func NewMachineHandler(params MachineHandlerParams) *MachineHandler {
	return &MachineHandler{
		machineUC:    params.MachineUC,
		permissionUC: params.PermissionUC,
		logger:       params.Logger,
	}
}

// RegisterMachineRequest represents the request body for registering a machine.
type RegisterMachineRequest struct {
	Code            string  `json:"code" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	ProductionSpeed float64 `json:"production_speed" validate:"gte=0"`
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateSpeedRequest represents the request body for a speed change.
type UpdateSpeedRequest struct {
	ProductionSpeed float64 `json:"production_speed" validate:"gte=0"`
}

// RegisterMachine handles machine creation.
func (h *MachineHandler) RegisterMachine(c echo.Context) error {
	var req RegisterMachineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de máquina inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	machine, err := h.machineUC.RegisterMachine(c.Request().Context(), usecase.MachineInput{
		Code:            req.Code,
		Name:            req.Name,
		ProductionSpeed: req.ProductionSpeed,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, machine)
}

// GetMachine retrieves one machine.
func (h *MachineHandler) GetMachine(c echo.Context) error {
	machineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de máquina inválido")
	}

	machine, err := h.machineUC.GetMachine(c.Request().Context(), machineID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, machine)
}

// ListMachines retrieves machines, optionally only the active ones.
func (h *MachineHandler) ListMachines(c echo.Context) error {
	onlyActive := c.QueryParam("only_active") == "true"

	machines, err := h.machineUC.ListMachines(c.Request().Context(), onlyActive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, machines)
}

// UpdateStatus moves a machine into or out of maintenance. Allowed for
// admins and for users holding the maintain capability on the machine.
func (h *MachineHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Identificador de usuário inválido no token")
	}

	machineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de máquina inválido")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de status inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if !h.isAdmin(c) {
		allowed, err := h.permissionUC.Check(c.Request().Context(), userID, machineID, entity.CapabilityMaintain)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if !allowed {
			return response.Forbidden(c, "PERMISSION_DENIED", "Você não tem permissão de manutenção nesta máquina")
		}
	}

	machine, err := h.machineUC.SetMaintenanceStatus(c.Request().Context(), machineID, entity.MachineStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, machine)
}

// UpdateSpeed changes the nominal production speed.
func (h *MachineHandler) UpdateSpeed(c echo.Context) error {
	machineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de máquina inválido")
	}

	var req UpdateSpeedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de velocidade inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	machine, err := h.machineUC.UpdateProductionSpeed(c.Request().Context(), machineID, req.ProductionSpeed)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, machine)
}

// DeactivateMachine soft-deletes a machine.
func (h *MachineHandler) DeactivateMachine(c echo.Context) error {
	machineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de máquina inválido")
	}

	if err := h.machineUC.DeactivateMachine(c.Request().Context(), machineID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Máquina desativada com sucesso"})
}

// FloorLabel renders the machine's QR label as a PNG.
func (h *MachineHandler) FloorLabel(c echo.Context) error {
	machineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de máquina inválido")
	}

	png, err := h.machineUC.FloorLabel(c.Request().Context(), machineID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *MachineHandler) isAdmin(c echo.Context) bool {
	roles, ok := middleware.GetRoles(c)

	return ok && slices.Contains(roles, entity.RoleAdmin.String())
}
