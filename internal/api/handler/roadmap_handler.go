package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futureproof/careerguide/internal/core/ports"
)

// RoadmapHandler exposes roadmaps and the per-session viewer state.
type RoadmapHandler struct {
	service ports.RoadmapService
}

func NewRoadmapHandler(service ports.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{service: service}
}

type setStageRequest struct {
	Stage *int `json:"stage" validate:"required,gte=0"`
}

// Get handles GET /v1/roadmaps/:role.
//
// @Summary      Get a role roadmap
// @Tags         roadmaps
// @Produce      json
// @Security     BearerAuth
// @Param        role  path      string  true  "Role key (e.g. data-analyst)"
// @Success      200   {object}  domain.Roadmap
// @Failure      404   {object}  map[string]string
// @Router       /v1/roadmaps/{role} [get]
func (h *RoadmapHandler) Get(c echo.Context) error {
	rm, err := h.service.GetRoadmap(c.Request().Context(), c.Param("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rm)
}

// View handles GET /v1/roadmaps/:role/view. Unknown roles render a
// not_found viewer rather than an error.
//
// @Summary      Get the roadmap viewer state
// @Tags         roadmaps
// @Produce      json
// @Security     BearerAuth
// @Param        role  path      string  true  "Role key"
// @Success      200   {object}  domain.ViewerSnapshot
// @Router       /v1/roadmaps/{role}/view [get]
func (h *RoadmapHandler) View(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	snap, err := h.service.View(c.Request().Context(), ns, c.Param("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// ToggleMilestone handles POST /v1/roadmaps/:role/milestones/:milestone/toggle.
//
// @Summary      Toggle a milestone
// @Tags         roadmaps
// @Produce      json
// @Security     BearerAuth
// @Param        role       path      string  true  "Role key"
// @Param        milestone  path      string  true  "Milestone id ({stage}-{index})"
// @Success      200        {object}  domain.ViewerSnapshot
// @Failure      404        {object}  map[string]string
// @Failure      422        {object}  map[string]string
// @Router       /v1/roadmaps/{role}/milestones/{milestone}/toggle [post]
func (h *RoadmapHandler) ToggleMilestone(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	snap, err := h.service.ToggleMilestone(c.Request().Context(), ns, c.Param("role"), c.Param("milestone"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// SetStage handles PUT /v1/roadmaps/:role/stage.
//
// @Summary      Move the active stage
// @Tags         roadmaps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        role  path      string           true  "Role key"
// @Param        body  body      setStageRequest  true  "Target stage, clamped to the roadmap"
// @Success      200   {object}  domain.ViewerSnapshot
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/roadmaps/{role}/stage [put]
func (h *RoadmapHandler) SetStage(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	var req setStageRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	snap, err := h.service.SetStage(c.Request().Context(), ns, c.Param("role"), *req.Stage)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}
