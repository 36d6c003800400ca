package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"zara/internal/delivery/http/response"
	"zara/internal/domain/entity"
	"zara/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultShiftPageSize = 20
	maxShiftPageSize     = 100
)

// ShiftHandlerParams holds dependencies for ShiftHandler, injected by Fx.
type ShiftHandlerParams struct {
	fx.In

	ShiftUC usecase.ShiftUsecase
	Logger  *slog.Logger
}

// ShiftHandler holds dependencies for shift production handlers.
type ShiftHandler struct {
	shiftUC usecase.ShiftUsecase
	logger  *slog.Logger
}

// NewShiftHandler is the constructor for ShiftHandler.
func NewShiftHandler(params ShiftHandlerParams) *ShiftHandler {
	return &ShiftHandler{
		shiftUC: params.ShiftUC,
		logger:  params.Logger,
	}
}

// ListShiftData retrieves a machine's shift aggregates, newest first.
// Supports limit/offset pagination and an optional (date, type) filter that
// narrows the result to a single shift window.
func (h *ShiftHandler) ListShiftData(c echo.Context) error {
	machineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de máquina inválido")
	}

	if dateParam := c.QueryParam("date"); dateParam != "" {
		return h.getSingleShift(c, machineID, dateParam)
	}

	limit, offset := paginationParams(c, defaultShiftPageSize, maxShiftPageSize)

	data, err := h.shiftUC.ListShiftData(c.Request().Context(), machineID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, data)
}

func (h *ShiftHandler) getSingleShift(c echo.Context, machineID uuid.UUID, dateParam string) error {
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Data inválida, utilize o formato AAAA-MM-DD")
	}

	shiftType := entity.ShiftType(c.QueryParam("type"))
	if !shiftType.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Tipo de turno inválido")
	}

	data, err := h.shiftUC.GetShiftData(c.Request().Context(), machineID, date, shiftType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, data)
}

// paginationParams reads limit/offset query parameters with sane bounds.
func paginationParams(c echo.Context, defaultLimit, maxLimit int) (int, int) {
	limit := defaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = min(parsed, maxLimit)
		}
	}

	offset := 0
	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	return limit, offset
}
