package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/analytics"
)

// DashboardHandler expose les agrégats du tableau de bord (protégé).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Tableau de bord : compteurs, soldes dérivés, articles sous seuil
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}
