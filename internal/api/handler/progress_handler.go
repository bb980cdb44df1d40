package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futureproof/careerguide/internal/core/ports"
)

// ProgressHandler exposes milestone progress and the study-hours log.
type ProgressHandler struct {
	service ports.ProgressService
}

func NewProgressHandler(service ports.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// --- Request / Response types ---

type saveMilestoneRequest struct {
	Stage       int    `json:"stage"       validate:"gte=0"`
	MilestoneID string `json:"milestoneId" validate:"required"`
	Completed   *bool  `json:"completed"`
}

type logSessionRequest struct {
	RoleKey    string  `json:"roleKey"    validate:"required"`
	HoursSpent float64 `json:"hoursSpent" validate:"gt=0"`
	Notes      string  `json:"notes"`
}

type hoursResponse struct {
	TotalHours float64 `json:"totalHours"`
}

// List handles GET /v1/progress.
//
// @Summary      List progress records
// @Tags         progress
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ProgressRecord
// @Router       /v1/progress [get]
func (h *ProgressHandler) List(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.ListProgress(c.Request().Context(), ns))
}

// Get handles GET /v1/progress/:role.
//
// @Summary      Get progress for one role
// @Tags         progress
// @Produce      json
// @Security     BearerAuth
// @Param        role  path      string  true  "Role key"
// @Success      200   {object}  domain.ProgressRecord
// @Failure      404   {object}  map[string]string
// @Router       /v1/progress/{role} [get]
func (h *ProgressHandler) Get(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	rec := h.service.GetProgress(c.Request().Context(), ns, c.Param("role"))
	if rec == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no progress for role"})
	}
	return c.JSON(http.StatusOK, rec)
}

// SaveMilestone handles POST /v1/progress/:role/milestones. Sending
// "completed": false removes the milestone instead.
//
// @Summary      Record or clear a milestone
// @Tags         progress
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        role  path      string                true  "Role key"
// @Param        body  body      saveMilestoneRequest  true  "Milestone"
// @Success      200   {object}  domain.ProgressRecord
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/progress/{role}/milestones [post]
func (h *ProgressHandler) SaveMilestone(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	var req saveMilestoneRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	role := c.Param("role")
	if req.Completed != nil && !*req.Completed {
		err = h.service.RemoveMilestone(ctx, ns, role, req.MilestoneID)
	} else {
		err = h.service.SaveMilestone(ctx, ns, role, req.Stage, req.MilestoneID)
	}
	if err != nil {
		return err
	}

	rec := h.service.GetProgress(ctx, ns, role)
	if rec == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, rec)
}

// LogSession handles POST /v1/sessions/log.
//
// @Summary      Log study hours
// @Tags         progress
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      logSessionRequest  true  "Study session"
// @Success      201   {object}  hoursResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/sessions/log [post]
func (h *ProgressHandler) LogSession(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	var req logSessionRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.service.LogSession(ctx, ns, req.RoleKey, req.HoursSpent, req.Notes); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, hoursResponse{TotalHours: h.service.GetTotalHoursInvested(ctx, ns)})
}

// Hours handles GET /v1/hours.
//
// @Summary      Total study hours
// @Tags         progress
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  hoursResponse
// @Router       /v1/hours [get]
func (h *ProgressHandler) Hours(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hoursResponse{TotalHours: h.service.GetTotalHoursInvested(c.Request().Context(), ns)})
}
