package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dps-scheduler/internal/application/dto"
	"github.com/jhoicas/dps-scheduler/internal/application/usecase"
	"github.com/jhoicas/dps-scheduler/internal/domain"
)

// MasterHandler mantiene las tablas de referencia: calendario operativo
// y maestro de materiales.
type MasterHandler struct {
	uc *usecase.MasterUseCase
}

// NewMasterHandler construye el handler de datos maestros.
func NewMasterHandler(uc *usecase.MasterUseCase) *MasterHandler {
	return &MasterHandler{uc: uc}
}

// ReplaceCalendar godoc
// @Summary      Reemplazar calendario operativo
// @Description  Carga completa: borra el calendario actual y lo sustituye en una
// @Description  sola transacción.
// @Tags         master
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReplaceCalendarRequest  true  "días con semana operativa"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/master/calendar [put]
func (h *MasterHandler) ReplaceCalendar(c *fiber.Ctx) error {
	var in dto.ReplaceCalendarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	n, err := h.uc.ReplaceCalendar(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cada día requiere fecha YYYY-MM-DD y semana positiva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"replaced": n})
}

// ListCalendar godoc
// @Summary      Listar calendario operativo
// @Tags         master
// @Produce      json
// @Success      200  {object}  dto.CalendarListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/master/calendar [get]
func (h *MasterHandler) ListCalendar(c *fiber.Ctx) error {
	out, err := h.uc.ListCalendar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ReplaceSKUs godoc
// @Summary      Reemplazar maestro de materiales
// @Description  Carga completa del maestro. Materiales repetidos conservan la
// @Description  primera aparición.
// @Tags         master
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReplaceSKUsRequest  true  "maestro de materiales"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/master/skus [put]
func (h *MasterHandler) ReplaceSKUs(c *fiber.Ctx) error {
	var in dto.ReplaceSKUsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	n, err := h.uc.ReplaceSKUs(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cada SKU requiere material no vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"replaced": n})
}

// ListSKUs godoc
// @Summary      Listar maestro de materiales
// @Tags         master
// @Produce      json
// @Success      200  {object}  dto.SKUListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/master/skus [get]
func (h *MasterHandler) ListSKUs(c *fiber.Ctx) error {
	out, err := h.uc.ListSKUs()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
