package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dps-scheduler/internal/application/dto"
	"github.com/jhoicas/dps-scheduler/internal/application/usecase"
	"github.com/jhoicas/dps-scheduler/internal/domain"
)

const defaultRunsLimit = 20

// DPSHandler expone las corridas del programador secuencial.
type DPSHandler struct {
	uc *usecase.DPSUseCase
}

// NewDPSHandler construye el handler de DPS.
func NewDPSHandler(uc *usecase.DPSUseCase) *DPSHandler {
	return &DPSHandler{uc: uc}
}

// Schedule godoc
// @Summary      Ejecutar corrida de programación
// @Description  Normaliza las filas del reporte, programa cada línea en secuencia
// @Description  y devuelve los slots con fecha de liberación dentro de la ventana
// @Description  de tres meses del mes base.
// @Tags         dps
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScheduleRequest  true  "mes base (1-12) y filas del reporte"
// @Success      200   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/dps/schedule [post]
func (h *DPSHandler) Schedule(c *fiber.Ctx) error {
	var in dto.ScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RunSchedule(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMonth) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes base inválido: use 1-12"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListRuns godoc
// @Summary      Listar corridas recientes
// @Tags         dps
// @Produce      json
// @Param        limit  query  int  false  "máximo de corridas (default 20)"
// @Success      200   {array}   dto.ScheduleRunResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/dps/runs [get]
func (h *DPSHandler) ListRuns(c *fiber.Ctx) error {
	limit := defaultRunsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit debe ser un entero positivo"})
		}
		limit = n
	}
	runs, err := h.uc.ListRuns(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(runs)
}
