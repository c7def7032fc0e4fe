package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Horas-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve horas y ganancias totales y por cliente/trabajo.
// GET /api/dashboard/stats?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
//
// Ambos extremos son opcionales; endDate incluye el día completo.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
