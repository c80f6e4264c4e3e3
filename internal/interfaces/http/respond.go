package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/pkg/i18n"
	"github.com/invorya/warehouse-api/pkg/logger"
	"github.com/invorya/warehouse-api/pkg/validator"
)

// respondError mapea errores a la respuesta uniforme {code, message}.
// Errores de dominio anticipados van con su código y mensaje localizado según
// el header `hl`; cualquier otro error se loguea y sale como genérico 100.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    int(derr.Code),
			Message: i18n.Message(c.Get("hl"), derr.Key),
		})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no anticipado")
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    int(domain.CodeGeneric),
		Message: i18n.Message(c.Get("hl"), "error.generic"),
	})
}

// respondInvalidBody cuerpo no parseable.
func respondInvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    int(domain.CodeGeneric),
		Message: i18n.Message(c.Get("hl"), "error.generic"),
	})
}

// respondValidation campos que no pasaron los tags `validate`.
func respondValidation(c *fiber.Ctx, errs []*validator.ErrorResponse) error {
	msg := i18n.Message(c.Get("hl"), "error.generic")
	if len(errs) > 0 {
		msg = fmt.Sprintf("%s: %s", errs[0].FailedField, errs[0].Tag)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    int(domain.CodeGeneric),
		Message: msg,
	})
}

// respondOK respuesta estándar de operaciones sin cuerpo propio.
func respondOK(c *fiber.Ctx) error {
	return c.JSON(dto.OKResponse{Code: 0, Message: "OK"})
}
