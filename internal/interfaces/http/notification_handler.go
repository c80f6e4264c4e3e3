package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/application/usecase"
	"github.com/invorya/warehouse-api/pkg/logger"
	"github.com/invorya/warehouse-api/pkg/validator"
)

// NotificationHandler configuración de alertas de vencimiento (protegido, ADMIN).
type NotificationHandler struct {
	uc  *usecase.NotificationUseCase
	log *logger.Logger
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, log: log}
}

// Set fija la antelación en días de las alertas.
func (h *NotificationHandler) Set(c *fiber.Ctx) error {
	var in dto.NotificationSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Set(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Get devuelve la configuración vigente.
func (h *NotificationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Upcoming productos cuyo vencimiento cae a hoy + antelación configurada.
func (h *NotificationHandler) Upcoming(c *fiber.Ctx) error {
	out, err := h.uc.UpcomingExpiries(c.Context(), GetPrincipal(c), time.Now())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
