package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futureproof/careerguide/internal/core/ports"
)

// PortfolioHandler manages the session's portfolio projects.
type PortfolioHandler struct {
	service ports.PortfolioService
}

func NewPortfolioHandler(service ports.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// List handles GET /v1/portfolio.
//
// @Summary      List portfolio projects
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PortfolioProject
// @Router       /v1/portfolio [get]
func (h *PortfolioHandler) List(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.List(c.Request().Context(), ns))
}

// Create handles POST /v1/portfolio.
//
// @Summary      Add a portfolio project
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.ProjectInput  true  "Project"
// @Success      201   {object}  domain.PortfolioProject
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/portfolio [post]
func (h *PortfolioHandler) Create(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	var in ports.ProjectInput
	if err := c.Bind(&in); err != nil {
		return invalidPayload(c)
	}

	p, err := h.service.Create(c.Request().Context(), ns, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /v1/portfolio/:id.
//
// @Summary      Replace a portfolio project
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Project id"
// @Param        body  body      ports.ProjectInput  true  "Project"
// @Success      200   {object}  domain.PortfolioProject
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/portfolio/{id} [put]
func (h *PortfolioHandler) Update(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	var in ports.ProjectInput
	if err := c.Bind(&in); err != nil {
		return invalidPayload(c)
	}

	p, err := h.service.Update(c.Request().Context(), ns, c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /v1/portfolio/:id.
//
// @Summary      Delete a portfolio project
// @Tags         portfolio
// @Security     BearerAuth
// @Param        id   path  string  true  "Project id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/portfolio/{id} [delete]
func (h *PortfolioHandler) Delete(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ns, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /v1/portfolio/stats.
//
// @Summary      Portfolio summary figures
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.PortfolioStats
// @Router       /v1/portfolio/stats [get]
func (h *PortfolioHandler) Stats(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.Stats(c.Request().Context(), ns))
}
