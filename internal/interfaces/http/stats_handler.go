package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/warehouse-api/internal/application/stats"
	"github.com/invorya/warehouse-api/pkg/logger"
)

// StatsHandler estadísticas diarias del libro de movimientos (protegido, ADMIN).
type StatsHandler struct {
	uc  *stats.StatisticsUseCase
	log *logger.Logger
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *stats.StatisticsUseCase, log *logger.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, log: log}
}

// queryDate lee ?date=YYYY-MM-DD; sin parámetro usa la fecha de hoy.
func queryDate(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// DailyIn entradas del día por producto.
func (h *StatsHandler) DailyIn(c *fiber.Ctx) error {
	date, err := queryDate(c)
	if err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.DailyIn(c.Context(), GetPrincipal(c), date)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// DailyTopOut salidas del día por producto, mayor cantidad primero.
func (h *StatsHandler) DailyTopOut(c *fiber.Ctx) error {
	date, err := queryDate(c)
	if err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.DailyTopOut(c.Context(), GetPrincipal(c), date)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Expired líneas vencidas acumuladas por producto.
func (h *StatsHandler) Expired(c *fiber.Ctx) error {
	date, err := queryDate(c)
	if err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Expired(c.Context(), GetPrincipal(c), date)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
