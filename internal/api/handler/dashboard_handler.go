package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futureproof/careerguide/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get handles GET /v1/dashboard.
//
// @Summary      Progress dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Dashboard
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.Summary(c.Request().Context(), ns))
}
