package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/facturacion-pro/internal/application/analytics"
	"github.com/tu-usuario/facturacion-pro/internal/application/dto"
)

// DashboardHandler maneja las consultas de agregación (protegido por rol).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Estadisticas devuelve los agregados del dashboard.
// GET /api/dashboard/estadisticas
func (h *DashboardHandler) Estadisticas(c *fiber.Ctx) error {
	stats, err := h.uc.GetEstadisticas(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}

// Vencidas devuelve el conteo de facturas vencidas de hecho. Respalda tanto
// /api/facturas/notificaciones como /api/facturas/vencidas-count.
func (h *DashboardHandler) Vencidas(c *fiber.Ctx) error {
	out, err := h.uc.ContarVencidas(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
