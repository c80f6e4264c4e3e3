package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/application/usecase"
	"github.com/invorya/warehouse-api/pkg/logger"
	"github.com/invorya/warehouse-api/pkg/validator"
)

// MeasureHandler maneja las peticiones HTTP para medidas (protegido).
type MeasureHandler struct {
	uc  *usecase.MeasureUseCase
	log *logger.Logger
}

// NewMeasureHandler construye el handler.
func NewMeasureHandler(uc *usecase.MeasureUseCase, log *logger.Logger) *MeasureHandler {
	return &MeasureHandler{uc: uc, log: log}
}

// Create alta de medida.
func (h *MeasureHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMeasureRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update parche parcial de medida.
func (h *MeasureHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMeasureRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete borrado lógico de medida.
func (h *MeasureHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c)
}

// List medidas ACTIVE.
func (h *MeasureHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID medida por ID.
func (h *MeasureHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetOne(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
