package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/warehouse-api/internal/application/auth"
	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/pkg/logger"
	"github.com/invorya/warehouse-api/pkg/validator"
)

// AuthHandler maneja el login (público).
type AuthHandler struct {
	uc  *auth.UseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login valida credenciales y devuelve el token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
